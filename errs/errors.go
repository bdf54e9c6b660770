package errs

import "github.com/napalu/cmdline/i18n"

// Schema errors. Each is a keyed sentinel: use WithArgs to attach the offending names and
// errors.Is to test for the kind.
var (
	ErrNotAStruct             = i18n.NewError(ErrNotAStructKey)
	ErrNilTarget              = i18n.NewError(ErrNilTargetKey)
	ErrFieldNotMapped         = i18n.NewError(ErrFieldNotMappedKey)
	ErrUnsupportedType        = i18n.NewError(ErrUnsupportedTypeKey)
	ErrInvalidTag             = i18n.NewError(ErrInvalidTagKey)
	ErrOptionName             = i18n.NewError(ErrOptionNameKey)
	ErrDuplicateOption        = i18n.NewError(ErrDuplicateOptionKey)
	ErrEnumerantNotMapped     = i18n.NewError(ErrEnumerantNotMappedKey)
	ErrEnumMultiNotInteger    = i18n.NewError(ErrEnumMultiNotIntegerKey)
	ErrArrayNotLast           = i18n.NewError(ErrArrayNotLastKey)
	ErrGroupNotPositional     = i18n.NewError(ErrGroupNotPositionalKey)
	ErrMultipleGroups         = i18n.NewError(ErrMultipleGroupsKey)
	ErrGroupNotRegistered     = i18n.NewError(ErrGroupNotRegisteredKey)
	ErrEmptyGroup             = i18n.NewError(ErrEmptyGroupKey)
	ErrMemberNotPointer       = i18n.NewError(ErrMemberNotPointerKey)
	ErrMemberNotImplementing  = i18n.NewError(ErrMemberNotImplementingKey)
	ErrCommandWithoutName     = i18n.NewError(ErrCommandWithoutNameKey)
	ErrDuplicateCommand       = i18n.NewError(ErrDuplicateCommandKey)
	ErrDeadBranch             = i18n.NewError(ErrDeadBranchKey)
	ErrAmbiguousLeaf          = i18n.NewError(ErrAmbiguousLeafKey)
	ErrCyclicGroup            = i18n.NewError(ErrCyclicGroupKey)
	ErrInvalidPositionalOrder = i18n.NewError(ErrInvalidPositionalOrderKey)
	ErrUnknownMarkup          = i18n.NewError(ErrUnknownMarkupKey)
	ErrSplitCommandLine       = i18n.NewError(ErrSplitCommandLineKey)
	ErrConfiguringParser      = i18n.NewError(ErrConfiguringParserKey)
	ErrUnknownLanguage        = i18n.NewError(ErrUnknownLanguageKey)
	ErrUnsupportedShell       = i18n.NewError(ErrUnsupportedShellKey)
	ErrInstallCompletion      = i18n.NewError(ErrInstallCompletionKey)
)
