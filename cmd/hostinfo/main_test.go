package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ActiveState/hostinfo/internal/errs"
)

type MainTestSuite struct {
	suite.Suite
	root string
}

func (suite *MainTestSuite) SetupTest() {
	suite.root = suite.T().TempDir()
	marker := filepath.Join(suite.root, "proc", "sys", "kernel", "ostype")
	suite.Require().NoError(os.MkdirAll(filepath.Dir(marker), 0755))
	suite.Require().NoError(os.WriteFile(marker, []byte("Linux\n"), 0644))
	suite.T().Setenv("HOSTINFO_CONFIG", "")
}

func (suite *MainTestSuite) TestExitCodes() {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	suite.Equal(0, run([]string{"--root", suite.root, "is", "linux"}, stdout, stderr))
	suite.Equal("true\n", stdout.String())

	stdout.Reset()
	suite.Equal(1, run([]string{"--root", suite.root, "is", "windows"}, stdout, stderr))
	suite.Empty(stderr.String(), "a mismatch is only reported through the exit code")

	suite.Equal(2, run([]string{"--root", suite.root, "is", "beos"}, stdout, stderr))
	suite.Contains(stderr.String(), "Invalid value for argument 'family'")
}

func (suite *MainTestSuite) TestErrorOutputFollowsFormat() {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	suite.Equal(1, run([]string{"--root", suite.root, "-o", "json", "distro", "--require", ">= 1"}, stdout, stderr))
	suite.Contains(stderr.String(), `{"error":`)
}

func (suite *MainTestSuite) TestErrorMessage() {
	err := errs.WrapUserFacing(errs.New("internal detail"), "Something went wrong", errs.SetTips("Try again"))
	suite.Equal("Something went wrong\n\nTips:\n - Try again", errorMessage(err))

	suite.Equal("outer: inner", errorMessage(errs.Wrap(errs.New("inner"), "outer")))
}

func (suite *MainTestSuite) TestUnwrapError() {
	code, err := unwrapError(nil)
	suite.Equal(0, code)
	suite.NoError(err)

	code, err = unwrapError(errs.Silence(errs.WrapExitCode(errs.New("quiet"), 3)))
	suite.Equal(3, code)
	suite.NoError(err)

	code, err = unwrapError(errs.New("loud"))
	suite.Equal(1, code)
	suite.Error(err)
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}
