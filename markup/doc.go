// Package markup builds HTML from fixed patterns and untrusted values.
//
// Every value that ends up in a page goes through [Escape]. The only way to emit text without entity
// encoding is to wrap it in a [Literal], which makes unescaped output an explicit, greppable choice:
//
//	page := markup.NewTemplate(`<p>Hello {name}</p><ul>{items}</ul>`,
//	    markup.Bind("name", markup.Text(r.FormValue("name"))),
//	    markup.Bind("items", markup.Concat{
//	        markup.Literal("<li>static</li>"),
//	        markup.NewTemplate(`<li>{v}</li>`, markup.Bind("v", markup.Value(42))),
//	    }),
//	)
//
//	html, err := markup.Escape(page)
//
// Rendering a template fails with a [*TemplateError] when the pattern is malformed or references a name that
// has no binding. These failures indicate a defect in the pattern rather than bad input, and callers are
// expected to surface them as server errors.
package markup
