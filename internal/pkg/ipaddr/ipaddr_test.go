//go:build unit

package ipaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidIPv4(t *testing.T) {
	valid := []string{
		"0.0.0.0",
		"192.168.1.1",
		"10.0.0.254",
		"255.255.255.255",
		"1.2.3.4",
	}
	for _, s := range valid {
		assert.True(t, ValidIPv4(s), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"192.168.1",
		"192.168.1.1.1",
		"192.168.1.256",
		"256.1.1.1",
		"192.168.01.1", // leading zero
		"00.0.0.0",     // leading zero
		"192.168.1.-1",
		"192.168.1.+1", // sign characters are not octets
		"+192.168.1.1",
		"1.2.3.+4",
		"192.168.1.a",
		"1921.68.1.1",
		"192..1.1",
		" 192.168.1.1",
	}
	for _, s := range invalid {
		assert.False(t, ValidIPv4(s), "expected %q to be invalid", s)
	}
}

func TestMaskToPrefix(t *testing.T) {
	t.Run("ValidMasks", func(t *testing.T) {
		cases := map[string]int{
			"255.255.255.0":   24,
			"255.255.0.0":     16,
			"255.0.0.0":       8,
			"255.255.255.252": 30,
			"255.255.255.255": 32,
			"0.0.0.0":         0,
			"255.255.254.0":   23,
		}
		for mask, want := range cases {
			got, err := MaskToPrefix(mask)
			require.NoError(t, err, "mask %q", mask)
			assert.Equal(t, want, got, "mask %q", mask)
		}
	})

	t.Run("InvalidOctet", func(t *testing.T) {
		_, err := MaskToPrefix("255.255.255.3")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid mask value")
	})

	t.Run("NonContiguous", func(t *testing.T) {
		_, err := MaskToPrefix("255.0.255.0")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not contiguous")

		_, err = MaskToPrefix("255.255.0.255")
		assert.Error(t, err)
	})

	t.Run("WrongGroupCount", func(t *testing.T) {
		_, err := MaskToPrefix("255.255.255")
		assert.Error(t, err)
	})

	t.Run("SignedOctet", func(t *testing.T) {
		_, err := MaskToPrefix("255.255.255.+0")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not a number")

		_, err = MaskToPrefix("255.255.-255.0")
		assert.Error(t, err)
	})
}

func TestCIDR(t *testing.T) {
	cidr, err := CIDR("192.168.1.10", "255.255.255.0")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.10/24", cidr)

	_, err = CIDR("192.168.1.10", "255.255.255.3")
	assert.Error(t, err)
}

func TestPrefixToMask(t *testing.T) {
	cases := map[int]string{
		24: "255.255.255.0",
		16: "255.255.0.0",
		30: "255.255.255.252",
		0:  "0.0.0.0",
		32: "255.255.255.255",
		23: "255.255.254.0",
	}
	for prefix, want := range cases {
		got, err := PrefixToMask(prefix)
		require.NoError(t, err)
		assert.Equal(t, want, got, "prefix %d", prefix)
	}

	_, err := PrefixToMask(33)
	assert.Error(t, err)
}

func TestMaskRoundTrip(t *testing.T) {
	for prefix := 0; prefix <= 32; prefix++ {
		mask, err := PrefixToMask(prefix)
		require.NoError(t, err)
		back, err := MaskToPrefix(mask)
		require.NoError(t, err)
		assert.Equal(t, prefix, back)
	}
}
