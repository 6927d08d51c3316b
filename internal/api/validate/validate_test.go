package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/fitgroups-api/internal/models"
)

func TestDecodeUserAppliesDefaultRole(t *testing.T) {
	var in models.UserInput
	err := Decode(strings.NewReader(`{"nombre":"Ana","apellido":"Lopez","nombre_usuario":"ana1","correo":" Ana@X.com ","contrasena":"secret1"}`), &in)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, in.Role)
	assert.Equal(t, "ana@x.com", in.Email)
}

func TestDecodeReportsFirstFailingField(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		dst   any
		field string
		msg   string
	}{
		{"short group name", `{"nombre":"ab","creador_id":1}`, &models.GroupInput{}, "nombre", "must be at least 3 characters"},
		{"missing creator", `{"nombre":"abc"}`, &models.GroupInput{}, "creador_id", "required"},
		{"bad email", `{"nombre":"Ana","apellido":"Lopez","nombre_usuario":"ana1","correo":"nope","contrasena":"secret1"}`, &models.UserInput{}, "correo", "must be a valid email"},
		{"short password", `{"nombre":"Ana","apellido":"Lopez","nombre_usuario":"ana1","correo":"a@x.com","contrasena":"123"}`, &models.UserInput{}, "contrasena", "must be at least 6 characters"},
		{"password over 72 bytes", `{"nombre":"Ana","apellido":"Lopez","nombre_usuario":"ana1","correo":"a@x.com","contrasena":"` + strings.Repeat("ñ", 40) + `"}`, &models.UserInput{}, "contrasena", "must be at most 72 bytes"},
		{"bad role", `{"nombre":"Ana","apellido":"Lopez","nombre_usuario":"ana1","correo":"a@x.com","contrasena":"secret1","rol":"root"}`, &models.UserInput{}, "rol", "must be one of: usuario, entrenador, admin"},
		{"short description", `{"nombre":"Legs","descripcion":"abc","usuario_id":1,"grupo_id":1}`, &models.RoutineInput{}, "descripcion", "must be at least 5 characters"},
		{"bad video url", `{"nombre":"Legs","descripcion":"squats","usuario_id":1,"grupo_id":1,"video_url":"not a url"}`, &models.RoutineInput{}, "video_url", "must be a valid URL"},
		{"missing name", `{}`, &models.UserNameInput{}, "nombre", "required"},
		{"malformed", `{"nombre":`, &models.GroupInput{}, "body", "malformed JSON"},
		{"empty body", ``, &models.GroupInput{}, "body", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decode(strings.NewReader(tt.body), tt.dst)
			require.Error(t, err)
			var errs Errs
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.msg, errs[0].Msg)
		})
	}
}

func TestDecodeRoutineWithoutVideo(t *testing.T) {
	var in models.RoutineInput
	err := Decode(strings.NewReader(`{"nombre":"Legs","descripcion":"squats","usuario_id":1,"grupo_id":2,"video_url":""}`), &in)
	require.NoError(t, err)
	assert.Nil(t, in.VideoURL)
}
