package utils

import (
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/william000000/team-odd-bn-backend/src/config"
)

// today is swapped in tests.
var today = func() time.Time {
	return time.Now()
}

func engine() *validator.Validate {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v
	}
	return validator.New()
}

// TrimmedEmail applies the built-in email rule after trimming surrounding spaces.
var TrimmedEmail validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return engine().Var(strings.TrimSpace(value), "required,email") == nil
}

var IsoDate validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(config.DATE_FORMAT, value)
	return err == nil
}

// BeforeToday accepts a YYYY-MM-DD date strictly earlier than the current
// UTC day.
var BeforeToday validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	date, err := time.Parse(config.DATE_FORMAT, value)
	if err != nil {
		return false
	}
	now := today().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return date.Before(startOfDay)
}

// GtDate compares the field with the sibling date field named in the param.
var GtDate validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	other, kind, _, found := fl.GetStructFieldOK2()
	if !found {
		return false
	}
	if kind == reflect.Ptr {
		if other.IsNil() {
			return true
		}
		other = other.Elem()
	}
	if other.Kind() != reflect.String {
		return false
	}
	date, err := time.Parse(config.DATE_FORMAT, value)
	if err != nil {
		return false
	}
	otherDate, err := time.Parse(config.DATE_FORMAT, other.String())
	if err != nil {
		return false
	}
	return date.After(otherDate)
}

func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	for tag, fn := range map[string]validator.Func{
		"trimmedemail": TrimmedEmail,
		"isodate":      IsoDate,
		"beforetoday":  BeforeToday,
		"gtdate":       GtDate,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Printf("Error registering validation %s: %s\n", tag, err.Error())
		}
	}
}
