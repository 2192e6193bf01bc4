package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantsFromRequest(t *testing.T) {
	price := 25.0
	variants := variantsFromRequest([]productVariantRequest{
		{Size: "M", Color: "red", Price: &price, Stock: 3, SKU: "SCARF-M-RED"},
		{Size: "L", Color: "blue", Stock: 1},
	})
	require.Len(t, variants, 2)

	require.NotNil(t, variants[0].Price)
	assert.Equal(t, 25.0, *variants[0].Price)
	assert.Equal(t, "SCARF-M-RED", variants[0].SKU)

	// No price on the request means the variant inherits the product price.
	assert.Nil(t, variants[1].Price)
	assert.Equal(t, 1, variants[1].Stock)

	assert.Nil(t, variantsFromRequest(nil))
}
