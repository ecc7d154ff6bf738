package req

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/signpost"
)

// routeValueDecoder decodes route values into params structs
// keyed by the same "schema" tags action.NewValues reads.
type routeValueDecoder struct {
	dec *schema.Decoder
}

func newRouteValueDecoder() routeValueDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return routeValueDecoder{dec: dec}
}

func (d routeValueDecoder) decode(dst any, vals url.Values) error {
	if err := d.dec.Decode(dst, vals); err != nil {
		return translateDecoderError(err)
	}

	return nil
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some are mismatches between route values and the params they decode into.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	if !errors.As(err, &pkgErrs) {
		// NOTE: schema reports a dst that is not a pointer to a struct this way.
		return fmt.Errorf("%w: %s", signpost.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for key, pkgErr := range pkgErrs {
		var ce schema.ConversionError
		var ue schema.UnknownKeyError
		switch {
		case errors.As(pkgErr, &ce):
			validErrs = append(validErrs, ValidationError{
				Field: ce.Key,
				// NOTE: for non-slice values, ce.Index is -1.
				Got:  fmt.Sprintf("bad value at index %d", max(0, ce.Index)),
				Rule: "must be " + ce.Type.String(),
			})

		case errors.As(pkgErr, &ue):
			validErrs = append(validErrs, ValidationError{
				Field: key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			})

		case strings.Contains(pkgErr.Error(), "schema: converter not found for"):
			return fmt.Errorf("%w: cannot convert route values into unsupported type", signpost.ErrNotValid)

		default:
			return fmt.Errorf("%w: %s", signpost.ErrUnexpected, pkgErr)
		}
	}

	validErrs.sort()

	return validErrs
}
