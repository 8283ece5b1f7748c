package bootstrap_test

import (
	"fmt"

	"github.com/secretboot/secretboot/bootstrap"
)

func ExampleEnvironment_GetDefault() {
	env := bootstrap.NewEnvironment([]string{"DB_HOST=db.internal"})

	fmt.Println(env.GetDefault("ENV", "dev"))
	fmt.Println(env.GetDefault("DB_HOST", "localhost"))
	// Output:
	// dev
	// db.internal
}
