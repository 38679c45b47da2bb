// Package vectors holds published Dilithium2 known-answer data used by the
// self test and the conformance tests.
package vectors

import "encoding/hex"

// KnownSeedHex is the seed of the published keypair vector.
const KnownSeedHex = "7c9935a0b07694aa0c6d10e4db6b1add2fd81a25ccb148032dcd739936737f2d"

// KnownPublicKeyHex is the public key derived from KnownSeedHex.
const KnownPublicKeyHex = "" +
	"1c0ee1111b08003f28e65e8b3bdeb037cf8f221dfcdaf5950edb38d506d85bef" +
	"6177e3de0d4f1ef5847735947b56d08e841db2444fa2b729adeb1417ca7adf42" +
	"a1490c5a097f002760c1fc419be8325aad0197c52ced80d3df18e7774265b289" +
	"912ceca1be3a90d8a4fde65c84c610864e47deecae3eea4430b9909559408d11" +
	"a6abdb7db9336df7f96eab4864a6579791265fa56c348cb7d2ddc90e133a95c3" +
	"f6b13601429f5408bd999aa479c1018159550ec55a113c493be648f4e036dd4f" +
	"8c809e036b4fbb918c2c484ad8e1747ae05585ab433fdf461af03c25a7737007" +
	"21aa05f7379fe7f5ed96175d4021076e7f52b60308eff5d42ba6e093b3d0815e" +
	"b3496646e49230a9b35c8d41900c2bb8d3b446a23127f7e096d85a1c794ad4c8" +
	"9277904fc6bfec57b1cdd80df9955030fdca741afbdac827b13ccd5403588af4" +
	"644003c2265dfa4d419dbccd2064892386518be9d51c16498275ebecf5cdc7a8" +
	"20f2c29314ac4a6f08b2252ad3cfb199aa42fe0b4fb571975c1020d949e194ee" +
	"1ead937bfb550bb3ba8e357a029c29f077554602e1ca2f2289cb9169941c3aaf" +
	"db8e58c7f2ac77291fb4147c65f6b031d3eba42f2acfd9448a5bc22b476e07cc" +
	"ceda2306c554ec9b7ab655f1d7318c2b7e67d5f69bedf56000fda98986b5ab1b" +
	"3a22d8dfd6681697b23a55c96e8710f3f98c044fb15f606313ee56c0f1f5ca0f" +
	"512e08484fcb358e6e528ffa89f8a866ccff3c0c5813147ec59af0470c4aad01" +
	"41d34f101da2e5e1bd52d0d4c9b13b3e3d87d1586105796754e7978ca1c68a7d" +
	"85df112b7ab921b359a9f03cbd27a7eac87a9a80b0b26b4c9657ed85ad7fa261" +
	"6ab345eb8226f69fc0f48183ff574bcd767b5676413adb12ea2150a0e97683ee" +
	"54243c25b7ea8a718606f86993d8d0dace834ed341eeb724fe3d5ff0bc8b8a7b" +
	"8104ba269d34133a4cf8300a2d688496b59b6fcbc61ae96062ea1d8e5b410c56" +
	"71f424417ed693329cd983001ffcd10023d598859fb7ad5fd263547117100690" +
	"c6ce7438956e6cc57f1b5de53bb0dc72ce9b6deaa85789599a70f0051f1a0e25" +
	"e86d888b00df36bdbc93ef7217c45ace11c0790d70e9953e5b417ba2fd9a4caf" +
	"82f1fce6f45f53e215b8355ef61d891df1c794231c162dd24164b534a9d48467" +
	"cdc323624c2f95d4402ff9d66ab1191a8124144afa35d4e31dc86caa797c31f6" +
	"8b85854cd959c4fac5ec53b3b56d374b888a9e979a6576b6345ec8522c960699" +
	"0281bf3ef7c5945d10fd21a2a1d2e5404c5cf21220641391b98bcf825398305b" +
	"56e58b611fe5253203e3df0d22466a73b3f0fbe43b9a62928091898b8a0e5b26" +
	"9db586b0e4ddef50d682a12d2c1be824149aa254c6381bb412d77c3f9aa902b6" +
	"88c81715a59c839558556d35ed4fc83b4ab18181f40f73dcd76860d8d8bf9452" +
	"0237c2ac0e463ba09e3c9782380dc07fe4fcba340cc2003439fd231461063807" +
	"0d6c9eea0a70bae83b5d5d3c5d3fde26dd01606c8c520158e7e5104020f248ce" +
	"aa666457c10aebf068f8a3bd5ce7b52c6af0abd5944af1ad4752c9113976083c" +
	"03b6c34e1d47ed69644cad782c2f7d05f8a148961d965fa2e1723a8ddebc22a9" +
	"0cd783dd1f4db38fb9ae5a6714b3d946781643d317b7dd79381cf789a9588bb3" +
	"e193b92a0b60d6b07d047f6984b0609ec57543c394ca8d5e5bcc2a731a79618b" +
	"d1e2e0da8704af98f20f5f8f5452ddf646b95b341dd7f0d2cc1fa15bd9895cd5" +
	"b65aa1cb94b5e2e788fda9825b656639193d98328154a4f2c35495a38b6ea0d2" +
	"ffaaa35df92c203c7f31cbbca7bd03c3c2302190cecd161fd49237e4f839e3f3"

// KnownSeed returns a fresh copy of the decoded seed.
func KnownSeed() []byte { return mustDecode(KnownSeedHex) }

// KnownPublicKey returns a fresh copy of the decoded public key.
func KnownPublicKey() []byte { return mustDecode(KnownPublicKeyHex) }

func mustDecode(s string) []byte {
	bz, err := hex.DecodeString(s)
	if err != nil {
		panic("vectors: " + err.Error())
	}
	return bz
}
