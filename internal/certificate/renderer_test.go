package certificate_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/Hazykiller/NGO-WEBSITE/internal/certificate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := certificate.NewRenderer()

	var buf bytes.Buffer
	err := r.Render(&buf, certificate.Data{
		DonorName: "Priya Sharma",
		Amount:    1500,
		OrderID:   "order_9A33XWu170gUtm",
		Date:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	pdf := buf.Bytes()
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")), "вывод должен быть PDF-документом")
	assert.Greater(t, len(pdf), 1000, "документ со шрифтами и рамкой не бывает крошечным")
	assert.True(t, bytes.Contains(pdf, []byte("%%EOF")))
}

func TestRenderer_EmptyNameStillRenders(t *testing.T) {
	t.Parallel()

	r := certificate.NewRenderer()

	var buf bytes.Buffer
	err := r.Render(&buf, certificate.Data{
		DonorName: "",
		Amount:    0,
		OrderID:   "order_1",
		Date:      time.Now(),
	})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestFilename(t *testing.T) {
	t.Parallel()

	now := time.Unix(1748779200, 0)

	assert.Equal(t, "certificate_order_42_1748779200.pdf", certificate.Filename("order_42", now))

	// Слеши в id не должны превращаться в подкаталоги
	assert.Equal(t, "certificate_ord_.._x_1748779200.pdf", certificate.Filename("ord/../x", now))
}
