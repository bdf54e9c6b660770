// Package errs declares the schema errors reported while deriving a schema from a command type.
// This file contains the translation keys of those errors.
package errs

const (
	prefixKey      = "cmdline"
	ErrorPrefixKey = prefixKey + ".error"
)

const (
	ErrNotAStructKey             = ErrorPrefixKey + ".not_a_struct"
	ErrNilTargetKey              = ErrorPrefixKey + ".nil_target"
	ErrFieldNotMappedKey         = ErrorPrefixKey + ".field_not_mapped"
	ErrUnsupportedTypeKey        = ErrorPrefixKey + ".unsupported_type"
	ErrInvalidTagKey             = ErrorPrefixKey + ".invalid_tag"
	ErrOptionNameKey             = ErrorPrefixKey + ".option_name"
	ErrDuplicateOptionKey        = ErrorPrefixKey + ".duplicate_option"
	ErrEnumerantNotMappedKey     = ErrorPrefixKey + ".enumerant_not_mapped"
	ErrEnumMultiNotIntegerKey    = ErrorPrefixKey + ".enum_multi_not_integer"
	ErrArrayNotLastKey           = ErrorPrefixKey + ".array_not_last"
	ErrGroupNotPositionalKey     = ErrorPrefixKey + ".group_not_positional"
	ErrMultipleGroupsKey         = ErrorPrefixKey + ".multiple_groups"
	ErrGroupNotRegisteredKey     = ErrorPrefixKey + ".group_not_registered"
	ErrEmptyGroupKey             = ErrorPrefixKey + ".empty_group"
	ErrMemberNotPointerKey       = ErrorPrefixKey + ".member_not_pointer"
	ErrMemberNotImplementingKey  = ErrorPrefixKey + ".member_not_implementing"
	ErrCommandWithoutNameKey     = ErrorPrefixKey + ".command_without_name"
	ErrDuplicateCommandKey       = ErrorPrefixKey + ".duplicate_command"
	ErrDeadBranchKey             = ErrorPrefixKey + ".dead_branch"
	ErrAmbiguousLeafKey          = ErrorPrefixKey + ".ambiguous_leaf"
	ErrCyclicGroupKey            = ErrorPrefixKey + ".cyclic_group"
	ErrInvalidPositionalOrderKey = ErrorPrefixKey + ".invalid_positional_order"
	ErrUnknownMarkupKey          = ErrorPrefixKey + ".unknown_markup"
	ErrSplitCommandLineKey       = ErrorPrefixKey + ".split_command_line"
	ErrConfiguringParserKey      = ErrorPrefixKey + ".configuring_parser"
	ErrUnknownLanguageKey        = ErrorPrefixKey + ".unknown_language"
	ErrUnsupportedShellKey       = ErrorPrefixKey + ".unsupported_shell"
	ErrInstallCompletionKey      = ErrorPrefixKey + ".install_completion"
)
