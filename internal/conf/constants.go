package conf

// MinCapacity - Smallest buffer capacity of a dynamic array, it is also the capacity of a newly created one
const MinCapacity int = 16

// GrowthFactor - Factor by which a full dynamic array buffer grows
const GrowthFactor int = 2

// ShrinkFactor - Factor by which a dynamic array buffer shrinks once less than half of it is in use
const ShrinkFactor float64 = 1.5

// DefaultStackSize - Max size of a bounded stack created without an explicit bound
const DefaultStackSize int = 32

// BloomHashFunctions - Number of hash functions (and thereby bits set per item) in a membership filter
const BloomHashFunctions int = 3

// BloomSalt1 - Salt of the first polynomial rolling hash in a membership filter
const BloomSalt1 int64 = 17

// BloomSalt2 - Salt of the second polynomial rolling hash in a membership filter
const BloomSalt2 int64 = 223

// SeparateChaining - Collision resolution technique used by the hash table and power set
const SeparateChaining int = 1

// SingleSlot - Collision resolution technique used by the dictionary, a collision is detected but never resolved
const SingleSlot int = 2
