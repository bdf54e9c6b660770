package completion

import (
	"fmt"
	"strings"
)

// FishGenerator renders complete commands for fish
type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data *Data) string {
	fn := "__" + functionName(programName)
	var script strings.Builder

	quoted := make([]string, len(data.Commands))
	for i, c := range data.Commands {
		quoted[i] = quoteFish(c)
	}
	fmt.Fprintf(&script, `# fish completion for %[1]s

function %[2]s_path
    set -l cmdpath ""
    set -l tokens (commandline -opc)
    set -e tokens[1]
    for word in $tokens
        string match -q -- '-*' $word; and continue
        set -l next (string trim -- "$cmdpath $word")
        contains -- $next %[3]s; and set cmdpath $next
    end
    echo $cmdpath
end

function %[2]s_at
    set -l cmdpath (%[2]s_path)
    test "$cmdpath" = "$argv[1]"
end

function %[2]s_under
    set -l cmdpath (%[2]s_path)
    test "$cmdpath" = "$argv[1]"; or string match -q -- "$argv[1] *" "$cmdpath"
end

complete -c %[1]s -f
`, programName, fn, strings.Join(quoted, " "))

	for _, o := range data.Options {
		script.WriteString(fishOption(programName, fn, "", o, data))
	}

	for _, c := range data.Commands {
		fmt.Fprintf(&script, "complete -c %s -n %s -a %s -d %s\n", programName,
			quoteFish(fn+"_at "+quoteFish(parentPath(c))), quoteFish(lastWord(c)), quoteFish(data.CommandDescriptions[c]))
		for _, o := range data.CommandOptions[c] {
			script.WriteString(fishOption(programName, fn, c, o, data))
		}
	}

	return script.String()
}

// fishOption renders option of the command at path, root options being offered everywhere
func fishOption(programName, fn, path, option string, data *Data) string {
	var b strings.Builder
	fmt.Fprintf(&b, "complete -c %s", programName)
	if path != "" {
		fmt.Fprintf(&b, " -n %s", quoteFish(fn+"_under "+quoteFish(path)))
	}

	switch {
	case strings.HasPrefix(option, "--"):
		fmt.Fprintf(&b, " -l %s", option[2:])
	case len(option) == 2:
		fmt.Fprintf(&b, " -s %s", option[1:])
	default:
		fmt.Fprintf(&b, " -o %s", strings.TrimPrefix(option, "-"))
	}

	key := Key(path, option)
	if values := data.OptionValues[key]; len(values) > 0 {
		fmt.Fprintf(&b, " -x -a %s", quoteFish(strings.Join(words(values), " ")))
	}
	if desc := data.Descriptions[key]; desc != "" {
		fmt.Fprintf(&b, " -d %s", quoteFish(desc))
	}
	b.WriteByte('\n')
	return b.String()
}
