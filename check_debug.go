//go:build arraydebug

package array

// debugChecks enables index validation in At and Get.
const debugChecks = true
