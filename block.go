package aes128

// EncryptBlock encrypts a single block with the expanded key s.
func EncryptBlock(p Block, s *Schedule) Block {
	state := addRoundKey(p, s.roundKey(0))
	for r := 1; r < Rounds; r++ {
		state = addRoundKey(mixColumns(shiftRows(subBytes(state))), s.roundKey(r))
	}
	return addRoundKey(shiftRows(subBytes(state)), s.roundKey(Rounds))
}

// DecryptBlock decrypts a single block with the expanded key s.
//
// It undoes EncryptBlock step by step, so InvMixColumns is
// applied after each inner round key is removed.
func DecryptBlock(c Block, s *Schedule) Block {
	state := invSubBytes(invShiftRows(addRoundKey(c, s.roundKey(Rounds))))
	for r := Rounds - 1; r >= 1; r-- {
		state = invSubBytes(invShiftRows(invMixColumns(addRoundKey(state, s.roundKey(r)))))
	}
	return addRoundKey(state, s.roundKey(0))
}
