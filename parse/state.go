package parse

// State is the cursor of the token parser over the argument vector
type State interface {
	Pos() int             // Get the current position
	Args() []string       // Get the entire argument list
	Remaining() []string  // Get the arguments from the current position on
	CurrentArg() string   // Get the current argument
	Peek() (string, bool) // Peek at the next argument
	Advance() bool        // Advance to the next argument
	Len() int             // Gets the length of the argument list
	Literal() bool        // Whether a bare -- has been seen
	EnterLiteral()        // Treat every following argument as a positional value
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos     int
	args    []string
	literal bool
}

// NewState creates a new State instance positioned before the first argument
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// Args returns the entire argument list
func (s *DefaultState) Args() []string {
	return s.args
}

// Remaining returns the current argument and every argument after it
func (s *DefaultState) Remaining() []string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return nil
	}
	return s.args[s.pos:]
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	s.pos = len(s.args)
	return false
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() (string, bool) {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1], true
	}
	return "", false
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return len(s.args)
}

// Literal reports whether the parser is in literal mode
func (s *DefaultState) Literal() bool {
	return s.literal
}

// EnterLiteral switches to literal mode. Literal mode is never left.
func (s *DefaultState) EnterLiteral() {
	s.literal = true
}
