package preview

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagecraft/styler"
)

func TestEffectiveClasses(t *testing.T) {
	tokens := []string{
		"flex",
		"bg-red-500",
		"hover:bg-blue-500",
		"focus:bg-green-500",
		"hover:underline",
		"max-lg:flex-col",
		"max-lg:hover:bg-purple-500",
	}

	tests := []struct {
		name  string
		bp    styler.Breakpoint
		state styler.UIState
		want  []string
	}{
		{
			name:  "desktop neutral drops all state tokens",
			bp:    styler.BreakpointDesktop,
			state: styler.StateNeutral,
			want:  []string{"flex", "bg-red-500"},
		},
		{
			name:  "desktop hover activates hover and suppresses colliding neutral",
			bp:    styler.BreakpointDesktop,
			state: styler.StateHover,
			want:  []string{"flex", "bg-blue-500", "underline"},
		},
		{
			name:  "desktop focus keeps non-colliding neutrals",
			bp:    styler.BreakpointDesktop,
			state: styler.StateFocus,
			want:  []string{"flex", "bg-green-500"},
		},
		{
			name:  "tablet sees only tablet tokens",
			bp:    styler.BreakpointTablet,
			state: styler.StateNeutral,
			want:  []string{"flex-col"},
		},
		{
			name:  "tablet hover activates the tablet hover token",
			bp:    styler.BreakpointTablet,
			state: styler.StateHover,
			want:  []string{"flex-col", "bg-purple-500"},
		},
		{
			name:  "mobile has nothing scoped to it",
			bp:    styler.BreakpointMobile,
			state: styler.StateNeutral,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, effectiveClasses(tokens, tt.bp, tt.state))
		})
	}
}

func TestEffectiveClassesDisplayFamilyGrouping(t *testing.T) {
	// All display keywords are one family: activating hover's hidden
	// must suppress the neutral flex even though the tokens share no
	// textual prefix.
	tokens := []string{"flex", "hover:hidden"}
	got := effectiveClasses(tokens, styler.BreakpointDesktop, styler.StateHover)
	require.Equal(t, []string{"hidden"}, got)
}

func TestEffectiveClassesFlexDirectionFamilyGrouping(t *testing.T) {
	tokens := []string{"flex", "flex-row", "hover:flex-col"}
	got := effectiveClasses(tokens, styler.BreakpointDesktop, styler.StateHover)
	require.Equal(t, []string{"flex", "flex-col"}, got)
}

func TestEffectiveClassesUnknownTokensSurvive(t *testing.T) {
	// Framework classes outside the styling vocabulary pass through the
	// neutral filter untouched.
	tokens := []string{"swiper-container", "hover:swiper-container-active"}
	got := effectiveClasses(tokens, styler.BreakpointDesktop, styler.StateNeutral)
	require.Equal(t, []string{"swiper-container"}, got)
}

func TestEffectiveClassesOverloadedBrackets(t *testing.T) {
	// A hover font size must not suppress the neutral text color even
	// though both use the text-[...] shape.
	tokens := []string{"text-[#ff0000]", "hover:text-[1.5rem]"}
	got := effectiveClasses(tokens, styler.BreakpointDesktop, styler.StateHover)
	require.Equal(t, []string{"text-[#ff0000]", "text-[1.5rem]"}, got)
}
