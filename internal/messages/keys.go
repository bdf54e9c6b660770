// Package messages lists the keys of the templates used to build parse failure messages
// and help screens. Templates use {0}, {1}, ... as placeholders for styled arguments.
package messages

const prefixKey = "cmdline.msg"

const (
	UnrecognizedKey           = prefixKey + ".unrecognized"
	IncompatibleKey           = prefixKey + ".incompatible"
	MissingParameterKey       = prefixKey + ".missing_parameter"
	MissingParameterBeforeKey = prefixKey + ".missing_parameter_before"
	MissingOptionKey          = prefixKey + ".missing_option"
	MissingOptionBeforeKey    = prefixKey + ".missing_option_before"
	UnexpectedArgumentKey     = prefixKey + ".unexpected_argument"
	IncompleteOptionKey       = prefixKey + ".incomplete_option"
	InvalidNumericKey         = prefixKey + ".invalid_numeric"
	InvalidValueKey           = prefixKey + ".invalid_value"
	ConstraintKey             = prefixKey + ".constraint"
	HelpRequestedKey          = prefixKey + ".help_requested"
	UsagePrefixKey            = prefixKey + ".usage_prefix"
	ErrorPrefixKey            = prefixKey + ".error_prefix"
)

// All returns every template key
func All() []string {
	return []string{
		UnrecognizedKey, IncompatibleKey, MissingParameterKey, MissingParameterBeforeKey,
		MissingOptionKey, MissingOptionBeforeKey, UnexpectedArgumentKey, IncompleteOptionKey,
		InvalidNumericKey, InvalidValueKey, ConstraintKey, HelpRequestedKey, UsagePrefixKey, ErrorPrefixKey,
	}
}
