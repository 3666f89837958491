package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/pkg/validate"
)

type card struct {
	NIC *string `validate:"omitempty,nic"`
}

func TestCustomValidator_NIC(t *testing.T) {
	t.Parallel()
	v := validate.NewCustomValidator()
	for nic, ok := range map[string]bool{
		"901234567V":   true,
		"901234567x":   true,
		"199012345678": true,
		"90123456V":    false,
		"12345":        false,
		"90123456789V": false,
	} {
		nic := nic
		err := v.Validate(card{NIC: &nic})
		if ok {
			require.NoError(t, err, nic)
		} else {
			require.Error(t, err, nic)
		}
	}
	require.NoError(t, v.Validate(card{}))
}
