package sha3x_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codahale/sha3x"
)

func TestTurboSHAKE(t *testing.T) {
	tests := []struct {
		name string
		sum  func([]byte, ...sha3x.Option) ([]byte, error)
		msg  []byte
		d    byte
		n    int
		want string
	}{
		{
			name: "TurboSHAKE128/empty",
			sum:  sha3x.SumTurboSHAKE128,
			d:    0x1F,
			n:    32,
			want: "1e415f1c5983aff2169217277d17bb538cd945a397ddec541f1ce41af2c1b74c",
		},
		{
			name: "TurboSHAKE128/ptn(17)",
			sum:  sha3x.SumTurboSHAKE128,
			msg:  pattern(17),
			d:    0x1F,
			n:    32,
			want: "9c97d036a3bac819db70ede0ca554ec6e4c2a1a4ffbfd9ec269ca6a111161233",
		},
		{
			name: "TurboSHAKE128/D=06",
			sum:  sha3x.SumTurboSHAKE128,
			msg:  []byte{0xFF},
			d:    0x06,
			n:    32,
			want: "8ec9c66465ed0d4a6c35d13506718d687a25cb05c74cca1e42501abd83874a67",
		},
		{
			name: "TurboSHAKE128/D=01",
			sum:  sha3x.SumTurboSHAKE128,
			msg:  []byte{0xFF},
			d:    0x01,
			n:    32,
			want: "012ad664922ce3f81b058735b50aacbde383f1a9a75180b4b9f929550a5552b5",
		},
		{
			name: "TurboSHAKE128/D=7F",
			sum:  sha3x.SumTurboSHAKE128,
			d:    0x7F,
			n:    16,
			want: "e4e1fd449c36ef25256c896e1907af3f",
		},
		{
			name: "TurboSHAKE256/empty",
			sum:  sha3x.SumTurboSHAKE256,
			d:    0x1F,
			n:    64,
			want: "367a329dafea871c7802ec67f905ae13c57695dc2c6663c61035f59a18f8e7db11edc0e12e91ea60eb6b32df06dd7f002fbafabb6e13ec1cc20d995547600db0",
		},
		{
			name: "TurboSHAKE256/ptn(17)",
			sum:  sha3x.SumTurboSHAKE256,
			msg:  pattern(17),
			d:    0x1F,
			n:    64,
			want: "b3bab0300e6a191fbe6137939835923578794ea54843f5011090fa2f3780a9e5cb22c59d78b40a0fbff9e672c0fbe0970bd2c845091c6044d687054da5d8e9c7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.sum(tt.msg, sha3x.WithDomain(tt.d), sha3x.WithDkLen(tt.n))
			require.NoError(t, err)

			if got := hex.EncodeToString(got); got != tt.want {
				t.Errorf("Sum() = %s, want = %s", got, tt.want)
			}
		})
	}
}

func TestTurboSHAKE_Defaults(t *testing.T) {
	s128, err := sha3x.NewTurboSHAKE128()
	require.NoError(t, err)
	require.Equal(t, 32, s128.Size())
	require.Equal(t, 168, s128.BlockSize())

	s256, err := sha3x.NewTurboSHAKE256()
	require.NoError(t, err)
	require.Equal(t, 64, s256.Size())
	require.Equal(t, 136, s256.BlockSize())

	// The default domain separation byte is 0x1F.
	a, err := sha3x.SumTurboSHAKE128([]byte("abc"))
	require.NoError(t, err)

	b, err := sha3x.SumTurboSHAKE128([]byte("abc"), sha3x.WithDomain(0x1F))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestTurboSHAKE_InvalidDomain(t *testing.T) {
	for _, d := range []byte{0x00, 0x80, 0xFF} {
		_, err := sha3x.NewTurboSHAKE128(sha3x.WithDomain(d))
		require.ErrorIs(t, err, sha3x.ErrDomain, "D=%#02x", d)

		_, err = sha3x.SumTurboSHAKE256(nil, sha3x.WithDomain(d))
		require.ErrorIs(t, err, sha3x.ErrDomain, "D=%#02x", d)
	}
}

func TestTurboSHAKE_Incremental(t *testing.T) {
	msg := pattern(1000)
	want, err := sha3x.SumTurboSHAKE128(msg, sha3x.WithDkLen(400))
	require.NoError(t, err)

	for _, split := range []int{0, 167, 168, 169, 999} {
		s, err := sha3x.NewTurboSHAKE128()
		require.NoError(t, err)

		_, _ = s.Write(msg[:split])
		_, _ = s.Write(msg[split:])

		got := make([]byte, 400)
		_, err = s.Read(got[:100])
		require.NoError(t, err)
		_, err = s.Read(got[100:])
		require.NoError(t, err)

		require.Equal(t, want, got, "split at %d", split)
	}
}
