package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var EstadosCliente = []string{"activo", "inactivo", "moroso"}

var EstadosPago = []string{"pagado", "pendiente", "vencido"}

// Register engancha los validadores de estado en el binding de gin,
// para usarlos como tags `estado_cliente` / `estado_pago`.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("estado_cliente", oneOf(EstadosCliente))
	v.RegisterValidation("estado_pago", oneOf(EstadosPago))
}

func oneOf(valid []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, s := range valid {
			if s == value {
				return true
			}
		}
		return false
	}
}
