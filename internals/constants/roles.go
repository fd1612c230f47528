package constants

import "fmt"

// Role dasar pada tabel users
const (
	RoleMahasiswa = "mahasiswa"
	RoleDosen     = "dosen"
)

// Template pesan error role
const (
	ErrOnlyDosenCanAccess       = "❌ Hanya dosen yang boleh mengakses fitur %s."
	ErrOnlyMahasiswaCanAccess   = "❌ Hanya mahasiswa yang boleh mengakses fitur %s."
	ErrOnlyKoordinatorCanAccess = "❌ Hanya koordinator PKL yang boleh mengakses fitur %s."
)

func RoleErrorDosen(feature string) string {
	return fmt.Sprintf(ErrOnlyDosenCanAccess, feature)
}

func RoleErrorMahasiswa(feature string) string {
	return fmt.Sprintf(ErrOnlyMahasiswaCanAccess, feature)
}

func RoleErrorKoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyKoordinatorCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMahasiswa,
		RoleDosen,
	}

	DosenOnly = []string{
		RoleDosen,
	}

	MahasiswaOnly = []string{
		RoleMahasiswa,
	}
)
