package parse

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/cmdline/types"
)

// TagKey is the struct tag key read by UnmarshalTagFormat
const TagKey = "cmdline"

const (
	errInvalidFormat = "invalid tag format in field %s: %s"
	errInvalidValue  = "invalid '%s' value in field %s: %w"
	errUnknownKey    = "unrecognized tag key '%s' in field %s"
	errEmptyNames    = "empty option name list in field %s"
)

// UnmarshalTagFormat parses a cmdline tag of the form "key:value;key;...". Keys without a
// value are switches. A tag of "-" ignores the field.
func UnmarshalTagFormat(tag string, field reflect.StructField) (*types.TagConfig, error) {
	config := &types.TagConfig{}
	tag = strings.TrimSpace(tag)
	if tag == "-" {
		config.Ignore = true
		return config, nil
	}

	for _, part := range strings.Split(tag, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			return nil, fmt.Errorf(errInvalidFormat, field.Name, part)
		}

		switch key {
		case "opt":
			config.Option = true
			if !found {
				config.Names = []string{DefaultOptionName(field.Name)}
				continue
			}
			config.Names = Names(value)
			if len(config.Names) == 0 {
				return nil, fmt.Errorf(errEmptyNames, field.Name)
			}
		case "pos":
			config.Positional = true
			if found && value != "" {
				order, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return nil, fmt.Errorf(errInvalidValue, key, field.Name, err)
				}
				config.Order = order
			}
		case "mandatory":
			b, err := boolValue(value, found)
			if err != nil {
				return nil, fmt.Errorf(errInvalidValue, key, field.Name, err)
			}
			config.Mandatory = b
		case "undocumented":
			b, err := boolValue(value, found)
			if err != nil {
				return nil, fmt.Errorf(errInvalidValue, key, field.Name, err)
			}
			config.Undocumented = b
		case "ignore":
			b, err := boolValue(value, found)
			if err != nil {
				return nil, fmt.Errorf(errInvalidValue, key, field.Name, err)
			}
			config.Ignore = b
		case "enum":
			switch strings.ToLower(value) {
			case "single":
				config.Enum = types.EnumSingleValue
			case "multi", "multiple":
				config.Enum = types.EnumMultipleValues
			default:
				return nil, fmt.Errorf(errInvalidValue, key, field.Name, fmt.Errorf("%q is neither single nor multi", value))
			}
		case "section":
			config.Section = value
		default:
			return nil, fmt.Errorf(errUnknownKey, key, field.Name)
		}
	}

	if config.Option && config.Positional {
		return nil, fmt.Errorf(errInvalidFormat, field.Name, "a field cannot be both opt and pos")
	}

	return config, nil
}

// Names splits a comma-separated list of names, dropping empty entries
func Names(value string) []string {
	var names []string
	for _, n := range strings.Split(value, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// DefaultOptionName derives the long option name of a field, e.g. DryRun becomes --dry-run
func DefaultOptionName(fieldName string) string {
	return "--" + strcase.ToKebab(fieldName)
}

func boolValue(value string, found bool) (bool, error) {
	if !found || value == "" {
		return true, nil
	}
	return strconv.ParseBool(value)
}
