package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ActorKind menutup kemungkinan peran menjadi tiga varian eksplisit.
// Di-resolve sekali di middleware auth dari klaim JWT, lalu dibaca
// controller lewat GetActor — bukan dengan menebak atribut user.
type ActorKind string

const (
	ActorMahasiswa ActorKind = "mahasiswa"
	ActorDosen     ActorKind = "dosen"
	ActorUnknown   ActorKind = "unknown"
)

type Actor struct {
	Kind          ActorKind
	UserID        uuid.UUID
	ProfileID     uuid.UUID // mahasiswa.id atau dosen.id sesuai Kind
	IsKoordinator bool      // hanya bermakna untuk Kind == ActorDosen
}

const actorLocalsKey = "actor"

func StoreActor(c *fiber.Ctx, a Actor) {
	c.Locals(actorLocalsKey, a)
}

func GetActor(c *fiber.Ctx) Actor {
	if a, ok := c.Locals(actorLocalsKey).(Actor); ok {
		return a
	}
	return Actor{Kind: ActorUnknown}
}

// GetDosenID mengembalikan id profil dosen, atau error 403 kalau actor bukan dosen.
func GetDosenID(c *fiber.Ctx) (uuid.UUID, error) {
	a := GetActor(c)
	if a.Kind != ActorDosen || a.ProfileID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini tidak terhubung dengan data Dosen.")
	}
	return a.ProfileID, nil
}

// GetMahasiswaID mengembalikan id profil mahasiswa, atau error 403 kalau actor bukan mahasiswa.
func GetMahasiswaID(c *fiber.Ctx) (uuid.UUID, error) {
	a := GetActor(c)
	if a.Kind != ActorMahasiswa || a.ProfileID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini tidak terhubung dengan data Mahasiswa.")
	}
	return a.ProfileID, nil
}
