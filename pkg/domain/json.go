package domain

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Encode writes the result as a JSON object.
func (r AuditResult) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("notebook")
	e.Str(r.Notebook)
	e.FieldStart("checked")
	e.Int(r.Checked)
	e.FieldStart("passed")
	e.Bool(r.Passed())
	e.FieldStart("dead")
	e.ArrStart()
	for _, d := range r.Dead {
		e.ObjStart()
		e.FieldStart("url")
		e.Str(d.URL)
		e.FieldStart("reason")
		e.Str(d.Reason)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

// Decode reads a result previously written by Encode. Unknown fields are skipped.
func (r *AuditResult) Decode(d *jx.Decoder) error {
	*r = AuditResult{}

	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "notebook":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode notebook")
			}
			r.Notebook = v
		case "checked":
			v, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "decode checked")
			}
			r.Checked = v
		case "dead":
			return d.Arr(func(d *jx.Decoder) error {
				var link DeadLink
				if err := d.Obj(func(d *jx.Decoder, key string) error {
					switch key {
					case "url":
						v, err := d.Str()
						if err != nil {
							return errors.Wrap(err, "decode url")
						}
						link.URL = v
					case "reason":
						v, err := d.Str()
						if err != nil {
							return errors.Wrap(err, "decode reason")
						}
						link.Reason = v
					default:
						return d.Skip()
					}

					return nil
				}); err != nil {
					return err
				}
				r.Dead = append(r.Dead, link)

				return nil
			})
		default:
			return d.Skip()
		}

		return nil
	})
}

// MarshalResult encodes the result into a standalone JSON document.
func MarshalResult(r AuditResult) []byte {
	var e jx.Encoder
	r.Encode(&e)

	return e.Bytes()
}

// UnmarshalResult decodes a JSON document produced by MarshalResult.
func UnmarshalResult(b []byte) (AuditResult, error) {
	var r AuditResult
	if err := r.Decode(jx.DecodeBytes(b)); err != nil {
		return AuditResult{}, errors.Wrap(err, "decode audit result")
	}

	return r, nil
}

// Encode writes the audit as a JSON object.
func (a Audit) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(a.ID.String())
	e.FieldStart("runId")
	e.Str(a.RunID.String())
	e.FieldStart("notebook")
	e.Str(a.Notebook)
	e.FieldStart("status")
	e.Str(string(a.Status))
	e.FieldStart("result")
	a.Result.Encode(e)
	e.FieldStart("attempts")
	e.UInt(a.Attempts)
	if a.LastError != "" {
		e.FieldStart("lastError")
		e.Str(a.LastError)
	}
	e.FieldStart("createdAt")
	e.Str(a.CreatedAt.UTC().Format(time.RFC3339))
	if !a.UpdatedAt.IsZero() {
		e.FieldStart("updatedAt")
		e.Str(a.UpdatedAt.UTC().Format(time.RFC3339))
	}
	e.ObjEnd()
}
