package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestError() {
	s.Run("message wins over code", func() {
		err := &Error{Code: CodeNotFound, Message: "no skeleton for kind"}
		s.Equal("no skeleton for kind", err.Error())
	})

	s.Run("falls back to code", func() {
		s.Equal("bad_request", (&Error{Code: CodeBadRequest}).Error())
	})
}

func (s *DomainErrorsSuite) TestIs() {
	s.Run("matches by code through a wrapped chain", func() {
		inner := New(CodeNotFound, "template missing")
		wrapped := fmt.Errorf("pack: %w", inner)
		s.True(errors.Is(wrapped, &Error{Code: CodeNotFound}))
		s.False(errors.Is(wrapped, &Error{Code: CodeInternal}))
	})

	s.Run("plain errors never match", func() {
		s.False((&Error{Code: CodeNotFound}).Is(errors.New("not_found")))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("keeps an existing code", func() {
		wrapped := Wrap(New(CodeBadRequest, "bad xml"), CodeInternal, "unpack failed")

		var de *Error
		s.Require().True(errors.As(wrapped, &de))
		s.Equal(CodeBadRequest, de.Code)
		s.Equal("unpack failed", de.Message)
	})

	s.Run("assigns the code to a foreign error", func() {
		cause := errors.New("eof")
		wrapped := Wrap(cause, CodeInvalidInput, "read body")
		s.Equal(CodeInvalidInput, CodeOf(wrapped))
		s.True(errors.Is(wrapped, cause))
	})
}

func (s *DomainErrorsSuite) TestCodeOf() {
	s.Equal(CodeInternal, CodeOf(errors.New("boom")))
	s.Equal(CodeInternal, CodeOf(nil))
	s.Equal(CodeUnsupportedMediaType, CodeOf(New(CodeUnsupportedMediaType, "want xml")))
	s.True(HasCode(New(CodeNotFound, "x"), CodeNotFound))
	s.False(HasCode(nil, CodeInternal))
}
