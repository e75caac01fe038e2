package pgvalidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_ValidPostgresFunction(t *testing.T) {
	text := `CREATE OR REPLACE FUNCTION f() RETURNS integer AS $$
BEGIN
  RETURN 1;
END;
$$ LANGUAGE plpgsql;`
	assert.Empty(t, Validate(text))
}

func TestValidate_SyntaxError(t *testing.T) {
	errs := Validate("CREATE FUNCTION (((( garbage")
	assert.NotEmpty(t, errs)
}

func TestValidate_EmptyInput(t *testing.T) {
	errs := Validate("")
	assert.NotEmpty(t, errs)
}
