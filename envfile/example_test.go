package envfile_test

import (
	"fmt"
	"strings"

	"github.com/secretboot/secretboot/envfile"
)

func ExampleParse() {
	input := `# written by the secrets agent
export DB_HOST=db.internal
export DB_PASSWORD="s3cr3t"
`

	entries, err := envfile.Parse(strings.NewReader(input))
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	for _, e := range entries {
		fmt.Printf("%s set=%v\n", e.Key, e.Value != "")
	}
	// Output:
	// DB_HOST set=true
	// DB_PASSWORD set=true
}

func ExampleMerge() {
	entries := []envfile.Entry{
		{Key: "ENV", Value: "dev"},
		{Key: "ENV", Value: "prod"},
	}

	merged := envfile.Merge(entries)
	fmt.Println(merged["ENV"])
	// Output:
	// prod
}
