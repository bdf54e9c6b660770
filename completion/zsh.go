package completion

import (
	"fmt"
	"strings"
)

// ZshGenerator renders a script for the zsh completion system. Descriptions are shown next to
// options, commands and values.
type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data *Data) string {
	fn := "_" + functionName(programName)
	var script strings.Builder

	fmt.Fprintf(&script, `#compdef %[1]s

%[2]s() {
    local cmdpath="" word next i
    for ((i = 2; i < CURRENT; i++)); do
        word="${words[i]}"
        [[ "$word" == -* ]] && continue
        next="${cmdpath:+$cmdpath }$word"
        case "$next" in`, programName, fn)

	if len(data.Commands) > 0 {
		quoted := make([]string, len(data.Commands))
		for i, c := range data.Commands {
			quoted[i] = quoteShell(c)
		}
		fmt.Fprintf(&script, `
            %s)
                cmdpath="$next"
                ;;`, strings.Join(quoted, "|"))
	}

	script.WriteString(`
        esac
    done

    local -a values options commands
    case "${cmdpath}@${words[CURRENT-1]}" in`)

	for _, s := range data.valueCases() {
		values := data.OptionValues[s.key()]
		items := make([]string, len(values))
		for i, v := range values {
			items[i] = zshItem(v.Word, v.Description)
		}
		fmt.Fprintf(&script, `
        %s)
            values=(%s)
            _describe -t values 'value' values
            return
            ;;`, s.shellPattern(), strings.Join(items, " "))
	}

	script.WriteString(`
    esac

    case "$cmdpath" in`)

	for _, p := range data.paths() {
		var options, commands []string
		for _, s := range data.visible(p) {
			options = append(options, zshItem(s.option, data.Descriptions[s.key()]))
		}
		for _, c := range data.children(p) {
			commands = append(commands, zshItem(lastWord(c), data.CommandDescriptions[c]))
		}
		if len(options) == 0 && len(commands) == 0 {
			continue
		}
		fmt.Fprintf(&script, `
        %s)
            options=(%s)
            commands=(%s)
            ;;`, quoteShell(p), strings.Join(options, " "), strings.Join(commands, " "))
	}

	fmt.Fprintf(&script, `
    esac

    if [[ "${words[CURRENT]}" == -* ]]; then
        _describe -t options 'option' options
    else
        _describe -t commands 'command' commands
        _describe -t options 'option' options
    fi
}

compdef %[2]s %[1]s
`, programName, fn)

	return script.String()
}
