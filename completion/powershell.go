package completion

import (
	"fmt"
	"strings"
)

// PowerShellGenerator renders a native argument completer for PowerShell
type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data *Data) string {
	var script strings.Builder

	quoted := make([]string, len(data.Commands))
	for i, c := range data.Commands {
		quoted[i] = quotePowerShell(c)
	}
	fmt.Fprintf(&script, `# PowerShell completion for %[1]s

Register-ArgumentCompleter -Native -CommandName %[2]s -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @(%[3]s)
    $tokens = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })
    $count = $tokens.Count
    if ($wordToComplete -ne '') { $count-- }

    $cmdpath = ''
    for ($i = 1; $i -lt $count; $i++) {
        if ($tokens[$i].StartsWith('-')) { continue }
        $next = ("$cmdpath " + $tokens[$i]).Trim()
        if ($commands -contains $next) { $cmdpath = $next }
    }
    $prev = if ($count -gt 1) { $tokens[$count - 1] } else { '' }

    $values = @(switch -Wildcard ("$cmdpath@$prev") {`, programName, quotePowerShell(programName), strings.Join(quoted, ", "))

	for _, s := range data.valueCases() {
		patterns := []string{quotePowerShell("*@" + s.option)}
		if s.path != "" {
			patterns = []string{quotePowerShell(s.path + "@" + s.option), quotePowerShell(s.path + " *@" + s.option)}
		}
		for _, pattern := range patterns {
			fmt.Fprintf(&script, `
        %s { @(%s); break }`, pattern, powerShellPairs(data.OptionValues[s.key()]))
		}
	}

	script.WriteString(`
    })
    if ($values.Count -gt 0) {
        $values | Where-Object { $_.Word -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_.Word, $_.Word, 'ParameterValue', $_.Tip)
        }
        return
    }

    $candidates = @(switch ($cmdpath) {`)

	for _, p := range data.paths() {
		var pairs []Value
		for _, s := range data.visible(p) {
			pairs = append(pairs, Value{Word: s.option, Description: data.Descriptions[s.key()]})
		}
		for _, c := range data.children(p) {
			pairs = append(pairs, Value{Word: lastWord(c), Description: data.CommandDescriptions[c]})
		}
		if len(pairs) == 0 {
			continue
		}
		fmt.Fprintf(&script, `
        %s { @(%s); break }`, quotePowerShell(p), powerShellPairs(pairs))
	}

	script.WriteString(`
    })
    $candidates | Where-Object { $_.Word -like "$wordToComplete*" } | ForEach-Object {
        $type = if ($_.Word.StartsWith('-')) { 'ParameterName' } else { 'Command' }
        [System.Management.Automation.CompletionResult]::new($_.Word, $_.Word, $type, $_.Tip)
    }
}
`)

	return script.String()
}

// powerShellPairs renders values as hashtables with Word and Tip keys. An empty description
// is replaced by the word, CompletionResult rejects empty tooltips.
func powerShellPairs(values []Value) string {
	pairs := make([]string, len(values))
	for i, v := range values {
		tip := v.Description
		if tip == "" {
			tip = v.Word
		}
		pairs[i] = fmt.Sprintf("@{ Word = %s; Tip = %s }", quotePowerShell(v.Word), quotePowerShell(tip))
	}
	return strings.Join(pairs, "; ")
}
