package constants

// System execution priorities, lower runs first within a tick
const (
	PrioritySpawn     = 10
	PriorityMovement  = 20
	PriorityCollision = 30
	PriorityCleanup   = 100
)
