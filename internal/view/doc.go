// Package view draws boxed, keyboard-navigable menus and tables on a
// console.Terminal.
//
// Both Menu and Table are thin content adapters over List, which owns the
// clear/draw/read-key cycle: the screen is cleared once, a static prelude is
// drawn, the cursor origin is captured, and every key press redraws the body
// from that origin so the box overwrites itself in place.
//
//	menu := view.NewMenu("Main Menu",
//		view.Item("Courses", showCourses),
//		view.Separator(),
//		view.Item("Exit", nil),
//	)
//	choice, err := menu.Render(term)
package view
