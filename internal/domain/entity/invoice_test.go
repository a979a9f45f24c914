package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicely-web/internal/domain/entity"
)

// El formato US sin ceros a la izquierda: mes/día/año.
func TestParseInvoiceDate(t *testing.T) {
	d, err := entity.ParseInvoiceDate("6/15/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), d)

	// Día de un dígito.
	d, err = entity.ParseInvoiceDate("12/1/2023")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), d)
}

// Round-trip: lo que parsea vuelve a formatear idéntico.
func TestParseInvoiceDate_RoundTrip(t *testing.T) {
	for _, s := range []string{"1/1/2024", "6/15/2024", "12/31/2023"} {
		d, err := entity.ParseInvoiceDate(s)
		require.NoError(t, err)
		assert.Equal(t, s, d.Format(entity.DateLayout))
	}
}

func TestParseInvoiceDate_RejectsOtherFormats(t *testing.T) {
	for _, s := range []string{"2024-06-15", "15/6/2024", "June 15, 2024", ""} {
		_, err := entity.ParseInvoiceDate(s)
		assert.Error(t, err, "formato %q no debe aceptarse", s)
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, entity.ValidStatus(entity.StatusPaid))
	assert.True(t, entity.ValidStatus(entity.StatusPending))
	assert.False(t, entity.ValidStatus("overdue"))
	assert.False(t, entity.ValidStatus("Paid"))
	assert.False(t, entity.ValidStatus(""))
}
