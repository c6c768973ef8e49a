package pymote

// CommandResult is the outcome of one executed console command.
//
// A result is either a success carrying the raw console output (and, for
// structured-output commands, a parsed payload), or a server-reported
// failure carrying the error text. The two variants are mutually
// exclusive: a failure never has output or a payload, and a success never
// has error text.
//
// Results are immutable values. Branch on OK(), or use Err() to treat a
// server-reported failure as an error at call sites that prefer that
// style.
type CommandResult struct {
	success bool
	output  string
	data    any
	errText string
}

// NewSuccessResult creates a successful result carrying the raw console
// output.
func NewSuccessResult(output string) CommandResult {
	return CommandResult{success: true, output: output}
}

// NewFailureResult creates a failed result carrying the server-supplied
// error text.
func NewFailureResult(errText string) CommandResult {
	return CommandResult{success: false, errText: errText}
}

// withData returns a copy of a successful result with a parsed payload
// attached. Failures never carry a payload.
func (r CommandResult) withData(data any) CommandResult {
	if !r.success {
		return r
	}
	r.data = data
	return r
}

// OK reports whether the server executed the command successfully.
func (r CommandResult) OK() bool {
	return r.success
}

// Output returns the raw console output. It is empty for failed results.
func (r CommandResult) Output() string {
	return r.output
}

// ErrorText returns the server-supplied error message. It is empty for
// successful results.
func (r CommandResult) ErrorText() string {
	return r.errText
}

// Err returns nil for a successful result and a *CommandError carrying
// the server-supplied message for a failed one. This lets call sites
// escalate server-reported failures without branching on OK().
func (r CommandResult) Err() error {
	if r.success {
		return nil
	}
	return NewCommandError(r.errText, nil)
}

// Data returns the parsed structured payload, or nil when the command has
// no structured output (or parsing recognized nothing to attach).
func (r CommandResult) Data() any {
	return r.data
}

// Regions returns the parsed region list, or nil if the result does not
// carry one.
func (r CommandResult) Regions() []Region {
	regions, _ := r.data.([]Region)
	return regions
}

// Users returns the parsed user list, or nil if the result does not carry
// one.
func (r CommandResult) Users() []User {
	users, _ := r.data.([]User)
	return users
}

// Stats returns the parsed statistics record, if the result carries one.
func (r CommandResult) Stats() (Stats, bool) {
	stats, ok := r.data.(Stats)
	return stats, ok
}

// Terrain returns the parsed terrain summary, if the result carries one.
func (r CommandResult) Terrain() (TerrainInfo, bool) {
	info, ok := r.data.(TerrainInfo)
	return info, ok
}

// String implements fmt.Stringer. Successful results render as their raw
// output, failures as "Error: <message>".
func (r CommandResult) String() string {
	if r.success {
		return r.output
	}
	return "Error: " + r.errText
}
