package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "02671153341", NormalizeCPF("026.711.533-41"))
	assert.Equal(t, "02671153341", NormalizeCPF(" 02671153341 "))
	assert.Equal(t, "", NormalizeCPF("abc"))
	assert.Equal(t, "", NormalizeCPF(""))
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC1D23", NormalizePlate(" abc-1d23 "))
	assert.Equal(t, "XYZ9B87", NormalizePlate("XYZ 9B87"))
}
