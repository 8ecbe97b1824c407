package model

// ModuleCatalog is the fixed, ordered robotics curriculum. Per-module
// rollups iterate it in this order; progress rows reference modules by
// name.
var ModuleCatalog = []string{
	"Introducción a la Robótica",
	"Sensores y Actuadores",
	"Programación de Bloques",
	"Circuitos Básicos",
	"Motores y Movimiento",
	"Programación Arduino",
	"Diseño Mecánico",
	"Control Remoto",
	"Proyecto Integrador",
	"Retos Avanzados",
	"IoT Básico",
	"Inteligencia Artificial",
}

// KnownModule reports whether name is part of the fixed catalog.
func KnownModule(name string) bool {
	for _, m := range ModuleCatalog {
		if m == name {
			return true
		}
	}
	return false
}
