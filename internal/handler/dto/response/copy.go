package response

import (
	"seating-service/internal/domain/pricing"
	"seating-service/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Money leaves the API as a decimal amount, e.g. 152.5.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: pricing.Money(0),
			DstType: float64(0),
			Fn: func(src any) (any, error) {
				m, ok := src.(pricing.Money)
				if !ok {
					return nil, errs.New("expected pricing.Money")
				}
				return m.Decimal(), nil
			},
		},
	},
}

func copyInto(to, from any) error {
	if err := copier.CopyWithOption(to, from, copyOption); err != nil {
		return errs.Wrap(err, "failed to map response")
	}
	return nil
}
