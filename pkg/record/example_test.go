package record_test

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

func ExampleValidate() {
	usuario := record.MustSchema(
		record.Required("id", record.KindInteger),
		record.Optional("email", record.KindText),
	)

	for _, in := range []string{
		`{"id": 1, "nome": "Yudi"}`,
		`{"nome": "Yudi"}`,
		`{"id": "not-a-number"}`,
	} {
		input, err := record.DecodeJSON(strings.NewReader(in))
		if err != nil {
			panic(err)
		}
		res := usuario.Validate(input)
		if res.OK() {
			fmt.Println("ok:", res.Record().Map())
			continue
		}
		for _, v := range res.Violations() {
			fmt.Println(v.Kind, v.Field)
		}
	}

	// Output:
	// ok: map[id:1]
	// missing_required_field id
	// type_mismatch id
}
