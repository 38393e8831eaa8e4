package styler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveConflictingClasses(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		property string
		want     []string
	}{
		{
			name:     "removes same family",
			tokens:   []string{"w-full", "w-[100px]", "h-10"},
			property: "width",
			want:     []string{"h-10"},
		},
		{
			name:     "font size removal keeps overloaded color token",
			tokens:   []string{"text-[1.5rem]", "text-[#ff0000]"},
			property: "fontSize",
			want:     []string{"text-[#ff0000]"},
		},
		{
			name:     "color removal keeps overloaded size token",
			tokens:   []string{"text-[1.5rem]", "text-[#ff0000]"},
			property: "color",
			want:     []string{"text-[1.5rem]"},
		},
		{
			name:     "background color removal keeps image url",
			tokens:   []string{"bg-red-500", "bg-[url(/a.png)]"},
			property: "backgroundColor",
			want:     []string{"bg-[url(/a.png)]"},
		},
		{
			name:     "prefixed tokens are out of scope",
			tokens:   []string{"w-full", "max-lg:w-[50px]", "hover:w-[10px]"},
			property: "width",
			want:     []string{"max-lg:w-[50px]", "hover:w-[10px]"},
		},
		{
			name:     "named sizes and named colors stay apart",
			tokens:   []string{"text-xl", "text-red-500"},
			property: "fontSize",
			want:     []string{"text-red-500"},
		},
		{
			name:     "plain keyword color is in the color family",
			tokens:   []string{"text-red", "text-xl"},
			property: "color",
			want:     []string{"text-xl"},
		},
		{
			name:     "border zero-suffix form conflicts with border width",
			tokens:   []string{"border", "border-2", "border-red-500"},
			property: "borderWidth",
			want:     []string{"border-red-500"},
		},
		{
			name:     "unknown property keeps everything",
			tokens:   []string{"w-full", "h-10"},
			property: "widht",
			want:     []string{"w-full", "h-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveConflictingClasses(tt.tokens, tt.property)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGetAffectedProperties(t *testing.T) {
	tests := []struct {
		token string
		want  []string
	}{
		{"w-full", []string{"width"}},
		{"text-xl", []string{"fontSize"}},
		{"text-red-500", []string{"color"}},
		{"text-red", []string{"color"}},
		{"bg-tan", []string{"backgroundColor"}},
		{"border-red", []string{"borderColor"}},
		{"text-[1.5rem]", []string{"fontSize"}},
		{"text-[#ff0000]", []string{"color"}},
		{"bg-[url(/a.png)]", []string{"backgroundImage"}},
		{"bg-[#fff]", []string{"backgroundColor"}},
		{"border-[3px]", []string{"borderWidth"}},
		{"border-[#336699]", []string{"borderColor"}},
		{"hidden", []string{"display"}},
		{"max-lg:w-full", []string{"width"}},
		{"hover:bg-red-500", []string{"backgroundColor"}},
		{"banana-42", nil},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			require.Equal(t, tt.want, GetAffectedProperties(tt.token))
		})
	}
}

func TestRemoveConflictsForClassIdempotent(t *testing.T) {
	tokens := []string{"w-full", "text-[#ff0000]", "text-xl", "p-4"}

	once := RemoveConflictsForClass(tokens, "text-[1.5rem]")
	twice := RemoveConflictsForClass(once, "text-[1.5rem]")

	require.Equal(t, []string{"w-full", "text-[#ff0000]", "p-4"}, once)
	require.Equal(t, once, twice)
}

func TestReplaceConflictingClasses(t *testing.T) {
	t.Run("replaces in family and appends", func(t *testing.T) {
		got := ReplaceConflictingClasses([]string{"w-full", "h-10"}, "w-[50px]")
		require.Equal(t, []string{"h-10", "w-[50px]"}, got)
	})

	t.Run("plain keyword colors replace each other", func(t *testing.T) {
		got := ReplaceConflictingClasses([]string{"text-red"}, "text-blue")
		require.Equal(t, []string{"text-blue"}, got)
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		got := ReplaceConflictingClasses([]string{"w-full"}, "")
		require.Equal(t, []string{"w-full"}, got)
	})

	t.Run("does not disturb other breakpoints", func(t *testing.T) {
		got := ReplaceConflictingClasses([]string{"w-full", "max-md:w-[10px]"}, "w-[50px]")
		require.Equal(t, []string{"max-md:w-[10px]", "w-[50px]"}, got)
	})
}

func TestGetConflictingClassPattern(t *testing.T) {
	p := GetConflictingClassPattern("width")
	require.NotNil(t, p)
	require.True(t, p.Matches("w-full"))
	require.True(t, p.Matches("w-[100px]"))
	require.False(t, p.Matches("h-full"))

	require.Nil(t, GetConflictingClassPattern("nope"))
}
