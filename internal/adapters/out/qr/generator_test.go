package qr_test

import (
	"bytes"
	"image/png"
	"testing"

	"shipments/internal/adapters/out/qr"
	"shipments/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	generator := qr.NewGenerator()

	data, err := generator.Generate(ports.QRPayload{
		TrackingNumber: "TRK12345",
		Status:         "Created",
	})

	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "output should be a valid PNG")
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestGenerator_Generate_FullPayload(t *testing.T) {
	generator := qr.NewGenerator()

	data, err := generator.Generate(ports.QRPayload{
		TrackingNumber: "TRK12345",
		Status:         "InTransit",
		Route:          "RT-0042",
		Location:       "Mexico City hub",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
