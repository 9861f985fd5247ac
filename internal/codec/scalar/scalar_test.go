package scalar

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"hiebus/pkg/domain"
)

type ScalarSuite struct {
	suite.Suite
	ctx  context.Context
	logs *bytes.Buffer
	conv *Converter
}

func TestScalarSuite(t *testing.T) {
	suite.Run(t, new(ScalarSuite))
}

func (s *ScalarSuite) SetupTest() {
	s.ctx = context.Background()
	s.logs = &bytes.Buffer{}
	s.conv = New(slog.New(slog.NewTextHandler(s.logs, nil)))
}

func (s *ScalarSuite) TestDate() {
	s.Run("packs without separators", func() {
		s.Equal("19870315", s.conv.PackDate(time.Date(1987, 3, 15, 13, 45, 0, 0, time.UTC)))
	})

	s.Run("round trips to midnight UTC", func() {
		got := s.conv.UnpackDate(s.ctx, "19870315")
		s.Equal(time.Date(1987, 3, 15, 0, 0, 0, 0, time.UTC), got)
	})

	s.Run("absent both ways", func() {
		s.Equal("", s.conv.PackDate(time.Time{}))
		s.True(s.conv.UnpackDate(s.ctx, "").IsZero())
		s.Empty(s.logs.String())
	})

	s.Run("malformed degrades with a warning", func() {
		s.True(s.conv.UnpackDate(s.ctx, "1987-03-15").IsZero())
		s.Contains(s.logs.String(), "unparsable date")
	})
}

func (s *ScalarSuite) TestDateTime() {
	ts := time.Date(2011, 6, 30, 8, 5, 9, 123_000_000, time.UTC)
	s.Equal("2011-06-30 08:05:09.123", s.conv.PackDateTime(ts))
	s.Equal(ts, s.conv.UnpackDateTime(s.ctx, "2011-06-30 08:05:09.123"))
	s.True(s.conv.UnpackDateTime(s.ctx, "yesterday").IsZero())
}

func (s *ScalarSuite) TestEnum() {
	s.Equal(domain.SexFemale, UnpackEnum(domain.Sexes, "f"))
	s.Equal(domain.AliveStatusNo, UnpackEnum(domain.AliveStatuses, "NO"))
	s.Equal(domain.Sex(""), UnpackEnum(domain.Sexes, "X"))
	s.Equal(domain.Sex(""), UnpackEnum(domain.Sexes, ""))
}

func (s *ScalarSuite) TestBool() {
	s.Run("pack is asymmetric", func() {
		text, ok := s.conv.PackBool(true)
		s.True(ok)
		s.Equal("true", text)

		_, ok = s.conv.PackBool(false)
		s.False(ok)
	})

	s.Run("unpack", func() {
		s.True(s.conv.UnpackBool("TRUE"))
		s.True(s.conv.UnpackBool("true"))
		s.False(s.conv.UnpackBool(""))
		s.False(s.conv.UnpackBool("yes"))
	})
}

func (s *ScalarSuite) TestBytes() {
	s.Equal("0AFF", s.conv.PackBytes([]byte{0x0A, 0xFF}))
	s.Equal([]byte{0x0A, 0xFF}, s.conv.UnpackBytes(s.ctx, "0AFF"))
	s.Equal([]byte{0x0A, 0xFF}, s.conv.UnpackBytes(s.ctx, "0aff"))
	s.Equal("", s.conv.PackBytes(nil))
	s.Equal("", s.conv.PackBytes([]byte{}))
	s.Nil(s.conv.UnpackBytes(s.ctx, "0AF"))
	s.Contains(s.logs.String(), "unparsable hex")
}

func (s *ScalarSuite) TestInt() {
	s.Equal("87", s.conv.PackInt(87))
	s.Equal(87, s.conv.UnpackInt(s.ctx, "87"))
	s.Equal(0, s.conv.UnpackInt(s.ctx, ""))
	s.Empty(s.logs.String())
	s.Equal(0, s.conv.UnpackInt(s.ctx, "eighty"))
	s.Contains(s.logs.String(), "unparsable integer")
}
