// Package smack presents a directory of Markdown files as slides in a terminal.
//
// Every *.md file directly inside the directory becomes a Section, ordered by
// file stem. A Section is split into Steps at admonition blocks:
//
//	# Title
//
//	First point.
//
//	!!! note "Speaker note"
//	    Shown in the footer while the step is on screen.
//
//	Second point.
//
// Each Step shows everything accumulated so far in its Section (progressive
// reveal) together with the admonition's content as a footer. Every Section
// ends with a built-in "end of section" step.
//
// Example:
//
//	pres, err := smack.Load("talk/")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctrl, err := smack.NewController(pres, smack.ControllerConfig{
//		Input:    os.Stdin,
//		Output:   os.Stdout,
//		Renderer: smack.NewRenderer(smack.DefaultTheme()),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := ctrl.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// Besides CommonMark the dialect supports front matter (title, justify),
// footnotes, tables, strikethrough, block attributes and the named containers
// "plot" and "center".
package smack
