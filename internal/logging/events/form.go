package events

import "github.com/atomicstack/formshell/internal/logging"

type FormTracer struct{}

var Form = FormTracer{}

func (FormTracer) Mount(id string, fields int) {
	logging.Trace("form.mount", map[string]interface{}{"form": id, "fields": fields})
}

func (FormTracer) Change(id, field, controlType string) {
	logging.Trace("form.change", map[string]interface{}{
		"form":  id,
		"field": field,
		"type":  controlType,
	})
}

func (FormTracer) Validate(id string, invalidFields int) {
	logging.Trace("form.validate", map[string]interface{}{"form": id, "invalid": invalidFields})
}

func (FormTracer) Submit(id string, valid bool) {
	logging.Trace("form.submit", map[string]interface{}{"form": id, "valid": valid})
}
