// Package styler is the styling core of the pagecraft visual website
// builder: a bidirectional translator between structured design
// properties and atomic utility-class strings.
//
// # Design to classes
//
// The host editor holds structured design objects as the source of
// truth; the codec derives the class-string representation whenever a
// property changes:
//
//	token := styler.PropertyToClass("sizing", "width", "100px") // "w-[100px]"
//	classes = styler.SetBreakpointClass(classes, "width", token,
//		styler.BreakpointTablet, styler.StateNeutral)
//
// # Classes to design
//
// The reverse path reconstructs a design snapshot from an arbitrary
// class string, used when importing externally authored markup:
//
//	design := styler.ClassesToDesign("flex w-[100px] hover:bg-blue-500")
//
// Unknown tokens and unknown properties are silently skipped: user
// authored class strings routinely contain framework classes outside
// this vocabulary, so every function here is total over string input.
//
// # Breakpoints and interaction states
//
// Styling is desktop-first: the unprefixed token is the widest-viewport
// default, tablet (max-lg:) and mobile (max-md:) are max-width
// overrides. Interaction states (hover:, focus:, active:, disabled:,
// visited:) layer independently of breakpoint, always after the
// breakpoint prefix. GetInheritedValue implements the cascade the
// editor's style panel shows for any breakpoint/state pair.
//
// The live preview renderer consuming these class strings lives in
// internal/preview; the markup importer in internal/markup.
package styler
