// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bn

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

var big0 = new(big.Int)

// Int is an arbitrary-precision unsigned integer.
// It can be used as a value without state sharing. Negative results never exist,
// subtraction saturates at zero.
type Int struct {
	value *big.Int
}

// FromBig create a bn.Int object from big.Int.
// Negative values are clamped to zero.
func FromBig(bi *big.Int) Int {
	i := Int{}
	i.SetBig(bi)
	return i
}

// FromUint64 create a bn.Int object from uint64.
func FromUint64(v uint64) Int {
	if v == 0 {
		return Int{}
	}
	return Int{new(big.Int).SetUint64(v)}
}

// MustParse parses a decimal or 0x-prefixed hex string, panics on failure.
func MustParse(s string) Int {
	var i Int
	if err := i.UnmarshalText([]byte(s)); err != nil {
		panic(err)
	}
	return i
}

// ToBig convert to big.Int.
func (i Int) ToBig() *big.Int {
	if i.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.value)
}

// SetBig set big.Int.
func (i *Int) SetBig(bi *big.Int) {
	if bi == nil || bi.Sign() <= 0 {
		i.value = nil
		return
	}
	i.value = new(big.Int).Set(bi)
}

// IsZero returns true if bn.Int presents a zero value.
func (i Int) IsZero() bool {
	return i.value == nil || i.value.Sign() == 0
}

// Cmp compares with another bn.Int.
// Returns:
//
//	-1 if i <  other
//	 0 if i == other
//	+1 if i >  other
func (i Int) Cmp(other Int) int {
	if i.value == nil {
		if other.value == nil {
			return 0
		}
		return -other.value.Sign()
	}

	if other.value == nil {
		return i.value.Sign()
	}
	return i.value.Cmp(other.value)
}

// CmpBig compares with big.Int value.
func (i Int) CmpBig(bi *big.Int) int {
	if i.value == nil {
		return -bi.Sign()
	}
	return i.value.Cmp(bi)
}

// Add returns i + other.
func (i Int) Add(other Int) Int {
	if other.IsZero() {
		return i
	}
	if i.IsZero() {
		return other
	}
	return Int{new(big.Int).Add(i.value, other.value)}
}

// Sub returns i - other, or zero if other is greater than i.
func (i Int) Sub(other Int) Int {
	if i.Cmp(other) <= 0 {
		return Int{}
	}
	if other.IsZero() {
		return i
	}
	return Int{new(big.Int).Sub(i.value, other.value)}
}

// Max returns the greater one of i and other.
func (i Int) Max(other Int) Int {
	if i.Cmp(other) >= 0 {
		return i
	}
	return other
}

// EncodeRLP implements rlp.Encoder.
func (i Int) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, i.ToBig())
}

// DecodeRLP implements rlp.Decoder.
func (i *Int) DecodeRLP(s *rlp.Stream) error {
	var bi big.Int
	if err := s.Decode(&bi); err != nil {
		return err
	}
	i.SetBig(&bi)
	return nil
}

// String implements Stringer.
func (i Int) String() string {
	if i.value == nil {
		return big0.String()
	}
	return i.value.String()
}

// Format see big.Int.Format.
func (i Int) Format(s fmt.State, ch rune) {
	if i.value == nil {
		big0.Format(s, ch)
		return
	}
	i.value.Format(s, ch)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (i Int) MarshalText() (text []byte, err error) {
	if i.value == nil {
		return big0.MarshalText()
	}
	return i.value.MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Both decimal and 0x-prefixed hex forms are accepted.
func (i *Int) UnmarshalText(text []byte) error {
	bi, ok := new(big.Int).SetString(string(text), 0)
	if !ok {
		return errors.Errorf("invalid integer %q", text)
	}
	if bi.Sign() < 0 {
		return errors.Errorf("negative integer %q", text)
	}
	i.SetBig(bi)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (i Int) MarshalJSON() ([]byte, error) {
	if i.value == nil {
		return big0.MarshalJSON()
	}
	return i.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// A JSON number or a quoted decimal/hex string is accepted.
func (i *Int) UnmarshalJSON(text []byte) error {
	if bytes.Equal(text, []byte("null")) {
		i.value = nil
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return i.UnmarshalText(text[1 : len(text)-1])
	}
	return i.UnmarshalText(text)
}
