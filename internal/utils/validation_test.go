package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("A32000"))
	assert.NoError(t, ValidateID("dock_1.2-b"))
	assert.Error(t, ValidateID(""))
	assert.Error(t, ValidateID("bad id"))
	assert.Error(t, ValidateID("<script>"))
	assert.Error(t, ValidateID(strings.Repeat("a", 101)))
}

func TestValidateLatitude(t *testing.T) {
	assert.NoError(t, ValidateLatitude(42.36))
	assert.NoError(t, ValidateLatitude(-90))
	assert.NoError(t, ValidateLatitude(90))
	assert.Error(t, ValidateLatitude(90.1))
	assert.Error(t, ValidateLatitude(-91))
}

func TestValidateLongitude(t *testing.T) {
	assert.NoError(t, ValidateLongitude(-71.06))
	assert.NoError(t, ValidateLongitude(180))
	assert.Error(t, ValidateLongitude(180.5))
	assert.Error(t, ValidateLongitude(-181))
}

func TestValidateRadius(t *testing.T) {
	assert.NoError(t, ValidateRadius(0))
	assert.NoError(t, ValidateRadius(500))
	assert.NoError(t, ValidateRadius(10000))
	assert.Error(t, ValidateRadius(-1))
	assert.Error(t, ValidateRadius(10001))
}

func TestValidateLocationParams(t *testing.T) {
	assert.Nil(t, ValidateLocationParams(42.36, -71.06, 800))

	fieldErrors := ValidateLocationParams(99, -200, -5)
	assert.Len(t, fieldErrors["lat"], 1)
	assert.Len(t, fieldErrors["lon"], 1)
	assert.Len(t, fieldErrors["radius"], 1)
}
