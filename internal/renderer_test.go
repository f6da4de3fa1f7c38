package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"paybox/entity"
)

func TestRedirectForm(t *testing.T) {
	p := entity.NewParameters()
	p.Set("PBX_SITE", "1999888")
	p.Set("PBX_TOTAL", "1000")
	p.Set("PBX_HMAC", "ABCDEF")

	form, err := NewRenderer().RedirectForm(&entity.BuiltRequest{
		Url:        "https://tpeweb.paybox.com" + paymentEndpoint,
		Reference:  "order100",
		Parameters: p,
	})
	require.NoError(t, err)

	require.Contains(t, form, `action="https://tpeweb.paybox.com`+paymentEndpoint+`"`)
	require.Contains(t, form, `<input type="hidden" name="PBX_SITE" value="1999888">`)
	require.Contains(t, form, `<input type="hidden" name="PBX_TOTAL" value="1000">`)
	require.Contains(t, form, `<input type="hidden" name="PBX_HMAC" value="ABCDEF">`)

	// inputs keep the mapping order
	site := strings.Index(form, `name="PBX_SITE"`)
	total := strings.Index(form, `name="PBX_TOTAL"`)
	hmac := strings.Index(form, `name="PBX_HMAC"`)
	require.Less(t, site, total)
	require.Less(t, total, hmac)
}

func TestRedirectFormEscapesValues(t *testing.T) {
	p := entity.NewParameters()
	p.Set("PBX_CMD", `a"b<c>`)

	form, err := NewRenderer().RedirectForm(&entity.BuiltRequest{
		Url:        "https://tpeweb.paybox.com" + paymentEndpoint,
		Parameters: p,
	})
	require.NoError(t, err)
	require.NotContains(t, form, `value="a"b<c>"`)
	require.Contains(t, form, "PBX_CMD")
}
