// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package templates embeds and renders the HTML pages.

Pages live under html/ and are parsed once at startup:

	tpl, err := templates.New()
	err = tpl.Render(w, "students.html", data)

Styling comes from Bootstrap on cdn.jsdelivr.net, the one external host
the Content-Security-Policy allows. No page carries inline scripts; the
policy forbids them.
*/
package templates
