package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// tagMessages are the English messages for tags the default translations
// leave untranslated. {0} is the config key, e.g. scheduler.timezone.
var tagMessages = map[string]string{
	"file":     "{0} must be an existing and readable file",
	"timezone": "{0} must be an IANA time zone name such as Asia/Tokyo, got {1}",
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("file", isReadableFile); err != nil {
		return nil, nil, fmt.Errorf("failed to register file validation: %w", err)
	}

	for tag, message := range tagMessages {
		if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		}, translateTag); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", tag, err)
		}
	}

	return validate, trans, nil
}

func translateTag(ut ut.Translator, fe validator.FieldError) string {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	t, err := ut.T(fe.Tag(), key, fmt.Sprint(fe.Value()))
	if err != nil {
		return fe.Error()
	}
	return t
}

// isReadableFile reports whether the field names a regular file this process
// can open.
func isReadableFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
