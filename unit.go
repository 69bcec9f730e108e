package promise

// Unit is the value type of a promise that carries no information, the
// equivalent of a `void` settlement. Promise[Unit] is resolved with unit,
// not with nil.
type Unit struct{}

// unit is the single value of type Unit.
var unit = Unit{}
