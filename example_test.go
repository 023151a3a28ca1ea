package zola_test

import (
	"fmt"

	zola "github.com/kianmeng/zola"
)

func ExampleRender() {
	res, err := zola.Render("# Title\n\nHello.", &zola.Context{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(res.HTML)
	// Output:
	// <h1 id="title">Title</h1>
	// <p>Hello.</p>
}
