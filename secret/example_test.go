package secret_test

import (
	"fmt"

	"github.com/secretboot/secretboot/secret"
)

func ExampleExpandStrict() {
	lookup := func(key string) (string, bool) {
		values := map[string]string{"HOST": "db.internal", "PORT": "5432"}
		v, ok := values[key]
		return v, ok
	}

	dsn, err := secret.ExpandStrict("postgres://${HOST}:${PORT}/app", lookup)
	if err != nil {
		fmt.Println("expand error:", err)
		return
	}
	fmt.Println(dsn)
	// Output:
	// postgres://db.internal:5432/app
}

func ExampleParseRef() {
	provider, ref, ok := secret.ParseRef("secretref:vault:app/config#api_key")
	fmt.Println(provider, ref, ok)
	// Output:
	// vault app/config#api_key true
}
