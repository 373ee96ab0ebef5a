package inventory

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// Nivel numérico de cada estatus. Las transiciones hacia adelante solo pueden
// avanzar un nivel a la vez; Anulado (0) es alcanzable desde cualquier estatus.
var statusLevel = map[string]int{
	entity.StatusAnulado:   0,
	entity.StatusPendiente: 1,
	entity.StatusAprobado:  2,
	entity.StatusTransito:  3,
	entity.StatusRecibido:  4,
}

// legalTransitions es la tabla explícita de transiciones (origen -> destinos
// legales). Anulado aparece como destino en toda fila, incluso desde sí mismo:
// cancelar un movimiento ya cancelado es legal y no tiene efecto en stock.
// Anulado -> Pendiente permite reiniciar un movimiento cancelado.
var legalTransitions = map[string]map[string]bool{
	entity.StatusPendiente: {
		entity.StatusAprobado: true,
		entity.StatusAnulado:  true,
	},
	entity.StatusAprobado: {
		entity.StatusTransito: true,
		entity.StatusAnulado:  true,
	},
	entity.StatusTransito: {
		entity.StatusRecibido: true,
		entity.StatusAnulado:  true,
	},
	entity.StatusRecibido: {
		entity.StatusAnulado: true,
	},
	entity.StatusAnulado: {
		entity.StatusPendiente: true,
		entity.StatusAnulado:   true,
	},
}

// IsValidStatus indica si el string es uno de los cinco estatus conocidos.
func IsValidStatus(status string) bool {
	_, ok := statusLevel[status]
	return ok
}

// Level devuelve el nivel numérico del estatus (-1 si no es un estatus válido).
func Level(status string) int {
	lvl, ok := statusLevel[status]
	if !ok {
		return -1
	}
	return lvl
}

// IsLegalTransition consulta la tabla de transiciones. Ambos estatus deben ser
// válidos; cualquier par desconocido es ilegal.
func IsLegalTransition(from, to string) bool {
	targets, ok := legalTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}

// IsTerminal indica si el estatus es final del ciclo (Recibido o Anulado).
// Anulado es terminal solo en el sentido de que detiene el flujo normal;
// sigue admitiendo el reinicio Anulado -> Pendiente.
func IsTerminal(status string) bool {
	return status == entity.StatusRecibido || status == entity.StatusAnulado
}
