package models

// StorageKey is the fixed key the transaction collection is persisted under.
const StorageKey = "aek_wallet_transactions"

// DefaultCreatedBy is recorded as the creating actor; the ledger has one user.
const DefaultCreatedBy = "ຜູ້ດູແລລະບົບ"

// Suggested classifications offered when recording an entry. Transactions
// are not constrained to these values.
var (
	IncomeCategories = []string{
		"ຂາຍສິນຄ້າ",
		"ບໍລິການ",
		"ຄ່າຄອມມິດຊັນ",
		"ເງິນລົງທຶນ",
		"ລາຍຮັບອື່ນໆ",
	}

	ExpenseCategories = []string{
		"ເງິນເດືອນ",
		"ຄ່າເຊົ່າ",
		"ຄ່າໄຟຟ້າ-ນ້ຳ",
		"ຄ່າວັດສະດຸ",
		"ຄ່າການຕະຫຼາດ",
		"ຄ່າຂົນສົ່ງ",
		"ຄ່າໃຊ້ຈ່າຍອື່ນໆ",
	}

	PaymentMethods = []string{"BCEL QR", "ເງິນສົດ", "ໂອນທະນາຄານ", "ອື່ນໆ"}
)

// File permissions
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
	PermissionExport    = 0644
)
