package env

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestString(t *testing.T) {
	Convey("String getter", t, func() {
		Convey("falls back when unset", func() {
			So(String("COUNCIL_TEST_UNSET_STRING", "fallback"), ShouldEqual, "fallback")
		})
		Convey("falls back when blank", func() {
			t.Setenv("COUNCIL_TEST_STRING", "   ")
			So(String("COUNCIL_TEST_STRING", "fallback"), ShouldEqual, "fallback")
		})
		Convey("trims surrounding whitespace", func() {
			t.Setenv("COUNCIL_TEST_STRING", "  value ")
			So(String("COUNCIL_TEST_STRING", "fallback"), ShouldEqual, "value")
		})
	})
}

func TestInt(t *testing.T) {
	Convey("Int getter", t, func() {
		t.Setenv("COUNCIL_TEST_INT", "42")
		So(Int("COUNCIL_TEST_INT", 7), ShouldEqual, 42)

		t.Setenv("COUNCIL_TEST_INT", "forty-two")
		So(Int("COUNCIL_TEST_INT", 7), ShouldEqual, 7)

		So(Int("COUNCIL_TEST_UNSET_INT", 7), ShouldEqual, 7)
	})
}

func TestBool(t *testing.T) {
	Convey("Bool getter", t, func() {
		for _, raw := range []string{"true", "TRUE", "1", "yes"} {
			t.Setenv("COUNCIL_TEST_BOOL", raw)
			So(Bool("COUNCIL_TEST_BOOL", false), ShouldBeTrue)
		}
		for _, raw := range []string{"false", "0", "No"} {
			t.Setenv("COUNCIL_TEST_BOOL", raw)
			So(Bool("COUNCIL_TEST_BOOL", true), ShouldBeFalse)
		}
		t.Setenv("COUNCIL_TEST_BOOL", "maybe")
		So(Bool("COUNCIL_TEST_BOOL", true), ShouldBeTrue)
	})
}

func TestSplitList(t *testing.T) {
	Convey("SplitList trims and drops blanks", t, func() {
		So(SplitList("a/b, ,c/d"), ShouldResemble, []string{"a/b", "c/d"})
		So(SplitList(""), ShouldBeEmpty)
		So(SplitList(" , ,"), ShouldBeEmpty)
		So(SplitList("  single  "), ShouldResemble, []string{"single"})
	})

	Convey("List reads from the environment", t, func() {
		t.Setenv("COUNCIL_TEST_LIST", "x,y ,, z")
		So(List("COUNCIL_TEST_LIST"), ShouldResemble, []string{"x", "y", "z"})
	})
}
