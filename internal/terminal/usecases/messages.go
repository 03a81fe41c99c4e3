package usecases

import (
	"fmt"

	"biometric-terminal/internal/terminal/domain"
)

var (
	screenIdle              = domain.NewScreen("MODO ASISTENCIA", "Coloque Dedo...")
	screenStarting          = domain.NewScreen("Iniciando...", "Cargando Sistema")
	screenSensorOK          = domain.NewScreen("Chequeo Sistema", "Sensor: OK")
	screenSensorMissing     = domain.NewScreen("ERROR FATAL", "Sensor Ausente")
	screenSensorFault       = domain.NewScreen("Excepcion", "Verificar Cables")
	screenSensorUnavailable = domain.NewScreen("Error Sensor", "No Disponible")
	screenReading           = domain.NewScreen("Leyendo Huella", "Identificando...")
	screenDenied            = domain.NewScreen("ACCESO DENEGADO", "Huella No Valida")
	screenProcessing        = domain.NewScreen("Procesando...", "Espere por favor")
	screenNetworkError      = domain.NewScreen("Error de Red", "Sin conexion")
	screenInvalidCommand    = domain.NewScreen("Error Comando", "ID Invalido")
	screenPlaceFinger       = domain.NewScreen("REGISTRO HUELLA", "Coloque Dedo...")
	screenRemoveFinger      = domain.NewScreen("REGISTRO HUELLA", "Retire el dedo")
	screenPlaceSameFinger   = domain.NewScreen("REGISTRO HUELLA", "Poner el MISMO")
	screenFirstReadError    = domain.NewScreen("Error Lectura", "Intente de nuevo")
	screenSecondReadError   = domain.NewScreen("Error Lectura", "No coincide")
	screenModelMismatch     = domain.NewScreen("Error Modelo", "Huellas distintas")
	screenStorageFailure    = domain.NewScreen("Error Guardado", "Fallo Memoria")
	screenEnrollTimeout     = domain.NewScreen("TIEMPO AGOTADO", "Reintente luego")
	screenOutOfService      = domain.NewScreen("Fuera de", "Servicio")
)

func screenAssigned(id domain.BiometricID) domain.Screen {
	return domain.NewScreen("NUEVO REGISTRO", fmt.Sprintf("ID Asignado: %d", id))
}

func screenStored(id domain.BiometricID) domain.Screen {
	return domain.NewScreen("REGISTRO EXITOSO", fmt.Sprintf("ID Guardado: %d", id))
}

func screenGreeting(name string) domain.Screen {
	return domain.NewScreen("HOLA "+name, "Registro Exitoso")
}

func screenServerError(statusCode int) domain.Screen {
	return domain.NewScreen("Error Servidor", fmt.Sprintf("Codigo: %d", statusCode))
}
