package middlewares

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const BODY_KEY = "body"

// Validate binds the JSON body and any uri-tagged path params into a T,
// runs its binding rules and stores the result for GetBody. Each failing
// field contributes the message from its msg tag.
func Validate[T any]() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		body := new(T)
		if errs := bindParams(body, ctx.Params); len(errs) > 0 {
			validationFailed(ctx, errs)
			return
		}
		if ctx.Request.Body != nil {
			if err := json.NewDecoder(ctx.Request.Body).Decode(body); err != nil && !errors.Is(err, io.EOF) {
				validationFailed(ctx, []string{"request body should be valid JSON"})
				return
			}
		}
		if err := binding.Validator.ValidateStruct(body); err != nil {
			validationFailed(ctx, messages(reflect.TypeOf(body).Elem(), err))
			return
		}
		ctx.Set(BODY_KEY, body)
		ctx.Next()
	}
}

// bindParams maps path params one at a time so a param that fails to
// convert reports the msg tag of the field it targets.
func bindParams(body any, params gin.Params) []string {
	var errs []string
	root := reflect.TypeOf(body).Elem()
	for _, p := range params {
		if err := binding.MapFormWithTag(body, map[string][]string{p.Key: {p.Value}}, "uri"); err != nil {
			msg := uriMessage(root, p.Key)
			if msg == "" {
				msg = err.Error()
			}
			errs = append(errs, msg)
		}
	}
	return errs
}

func uriMessage(root reflect.Type, key string) string {
	if root.Kind() != reflect.Struct {
		return ""
	}
	for i := 0; i < root.NumField(); i++ {
		if f := root.Field(i); f.Tag.Get("uri") == key {
			return f.Tag.Get("msg")
		}
	}
	return ""
}

func GetBody[T any](ctx *gin.Context) *T {
	if v, ok := ctx.Get(BODY_KEY); ok {
		if body, ok := v.(*T); ok {
			return body
		}
	}
	return new(T)
}

func validationFailed(ctx *gin.Context, errs []string) {
	log.Printf("[Validation] %s %s: %s\n", ctx.Request.Method, ctx.FullPath(), strings.Join(errs, "; "))
	ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"status":  http.StatusBadRequest,
		"message": "Validation failed",
		"errors":  errs,
	})
}

func messages(root reflect.Type, err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fieldMessage(root, fe.StructNamespace())
		if msg == "" {
			msg = fe.Error()
		}
		out = append(out, msg)
	}
	return out
}

// fieldMessage walks a namespace like "Body.Itinerary[1].OriginID" down
// from root and returns the msg tag of the last field.
func fieldMessage(root reflect.Type, namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return ""
	}
	t := root
	var field reflect.StructField
	for _, part := range parts[1:] {
		if i := strings.IndexByte(part, '['); i >= 0 {
			part = part[:i]
		}
		for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return ""
		}
		f, ok := t.FieldByName(part)
		if !ok {
			return ""
		}
		field = f
		t = f.Type
	}
	return field.Tag.Get("msg")
}
