// Package data defines the model shared by data providers and the hosts
// that consume them.
//
// A Key names one typed attribute of a subject. Subjects implement Holder
// and report a HolderType; holder types form a subtype hierarchy rooted at
// AnyHolder, so a provider declared for a broad type applies to every
// narrower one.
//
// # Keys
//
//	var Health = data.NewKey[float64]("health")
//
// # Holder types
//
//	Entity := data.NewHolderType("entity")
//	Player := data.NewHolderType("player", Entity)
//	Entity.IsAssignableFrom(Player) // true
//
// Writes report a Result that carries the successful, replaced and rejected
// values of the transaction.
package data
