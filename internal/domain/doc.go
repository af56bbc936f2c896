// Package domain contains the task entity, its identifier rules, and the
// error taxonomy shared by every layer of the application. It has no
// knowledge of storage or presentation.
package domain
