package completion

import (
	"fmt"
	"strings"
)

// BashGenerator renders a script for the bash complete builtin
type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data *Data) string {
	fn := "_" + functionName(programName) + "_completion"
	var script strings.Builder

	fmt.Fprintf(&script, `# bash completion for %[1]s

%[2]s() {
    local cur prev word next cmdpath i
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmdpath=""

    for ((i=1; i < COMP_CWORD; i++)); do
        word="${COMP_WORDS[i]}"
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

    case "${cmdpath}@${prev}" in`)

	for _, s := range data.valueCases() {
		fmt.Fprintf(&script, `
        %s)
            COMPREPLY=( $(compgen -W %s -- "$cur") )
            return
            ;;`, s.shellPattern(), quoteShell(strings.Join(words(data.OptionValues[s.key()]), " ")))
	}

	script.WriteString(`
    esac

    local candidates=""
    case "$cmdpath" in`)

	for _, p := range data.paths() {
		var candidates []string
		for _, s := range data.visible(p) {
			candidates = append(candidates, s.option)
		}
		for _, c := range data.children(p) {
			candidates = append(candidates, lastWord(c))
		}
		if len(candidates) == 0 {
			continue
		}
		fmt.Fprintf(&script, `
        %s)
            candidates=%s
            ;;`, quoteShell(p), quoteShell(strings.Join(candidates, " ")))
	}

	fmt.Fprintf(&script, `
    esac

    COMPREPLY=( $(compgen -W "$candidates" -- "$cur") )
}

complete -F %[2]s %[1]s
`, programName, fn)

	return script.String()
}
