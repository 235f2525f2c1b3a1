package dynamo

import "fmt"

type ComponentExistsError struct {
	Component Component
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity: %v", e.Component)
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity: %v", e.Component)
}

type FamilyCapacityError struct {
	Capacity int
}

func (e FamilyCapacityError) Error() string {
	return fmt.Sprintf("family registry at maximum capacity (%d)", e.Capacity)
}
