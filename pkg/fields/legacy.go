package fields

import "strconv"

// LegacyDescriptor is the (class, args, kwargs) triple older schema
// migration tooling expects for a field.
type LegacyDescriptor struct {
	Class  string
	Args   []string
	Kwargs map[string]string
}

// LegacyDescriptor introspects the field. Fields without a legacy class fail
// with ErrLegacyClassMissing.
func (f Field) LegacyDescriptor() (LegacyDescriptor, error) {
	if f.Storage.LegacyClass == "" {
		return LegacyDescriptor{}, ErrLegacyClassMissing
	}
	kwargs := map[string]string{
		"blank": pyBool(f.Storage.Blank),
	}
	if f.Storage.Null {
		kwargs["null"] = pyBool(true)
	}
	if f.Storage.MaxLength > 0 {
		kwargs["max_length"] = strconv.Itoa(f.Storage.MaxLength)
	}
	if f.Storage.HasDefault {
		kwargs["default"] = strconv.Quote(f.Storage.Default)
	}
	return LegacyDescriptor{Class: f.Storage.LegacyClass, Args: []string{}, Kwargs: kwargs}, nil
}

func pyBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
