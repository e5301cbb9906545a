package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFoldsLetterVariants(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"أحمد", "احمد"},
		{"إيمان", "ايمان"},
		{"آمنة", "امنه"},
		{"مصطفى", "مصطفي"},
		{"فاطمة", "فاطمه"},
		{"مُحَمَّد", "محمد"},
		{"عبـــدالله", "عبدالله"},
		{"  أحمد علي  ", "احمد علي"},
		{"Phone HOME", "phone home"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"أحمد",
		"إِبْرَاهِيم",
		"آمنة مصطفى",
		"مدرسة الأمل",
		"ٱلرحمن",
		"Ünïcödé  ",
		"29001011234567",
		"한국어",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize(Normalize(%q))", in)
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("أحمد علي", "احمد"))
	assert.False(t, Contains("احمد", "أحمد علي"))
	assert.True(t, Contains("فاطمة", "فاطمه"))
	assert.False(t, Contains("محمود", "أحمد"))
	assert.False(t, Contains("", "أحمد"))
	assert.False(t, Contains("أحمد", "   "))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("أحمد", " احمد "))
	assert.False(t, Equal("أحمد علي", "احمد"))
	assert.False(t, Equal("", ""))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "2900101", Digits("٢٩٠٠١٠١"))
	assert.Equal(t, "150", Digits("۱۵0"))
}
